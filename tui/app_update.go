package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/finstmt/finstmt"
)

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 4
		if w > previewWidth {
			w = previewWidth
		}
		if w < 20 {
			w = 20
		}
		m.notesWidth = w
		m.notes.SetWidth(w)
		h := msg.Height - 16
		if h < 4 {
			h = 4
		}
		m.notes.SetHeight(h)
		m.preview = m.renderPreview()
		return m, nil

	case tea.KeyMsg:
		switch m.focus {
		case focusField:
			return m.updateField(msg)
		case focusNotes:
			return m.updateNotes(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "q" {
		m.pendingQuit = false
	}
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.dirty && !m.pendingQuit {
			m.pendingQuit = true
			m.status = "unsaved changes, q again to quit"
			return m, nil
		}
		return m, tea.Quit
	case "up", "k":
		if m.line > 0 {
			m.line--
		}
		return m, nil
	case "down", "j":
		if m.line < len(m.lines)-1 {
			m.line++
		}
		return m, nil
	case "left", "h":
		if c := m.colAt(m.line); c > 0 {
			m.col = c - 1
		}
		return m, nil
	case "right", "l":
		if c := m.colAt(m.line); c < len(m.lines[m.line].refs)-1 {
			m.col = c + 1
		}
		return m, nil
	case "enter":
		return m.startFieldEdit()
	case "n":
		return m.startNotesEdit()
	case "$":
		if m.composer.Style() == finstmt.StyleStatement {
			m.composer.SetStyle(finstmt.StyleCompliance)
			m.status = "compliance amounts"
		} else {
			m.composer.SetStyle(finstmt.StyleStatement)
			m.status = "statement amounts"
		}
		return m, nil
	case "ctrl+s":
		return m.save()
	}
	return m, nil
}

func (m appModel) startFieldEdit() (tea.Model, tea.Cmd) {
	raw, ok := m.composer.StartEdit(m.ref())
	if !ok {
		m.status = "editing is disabled while the report regenerates"
		return m, nil
	}
	m.focus = focusField
	m.input.SetValue(raw)
	m.input.CursorEnd()
	m.input.Focus()
	m.status = "enter or esc closes the field"
	return m, textinput.Blink
}

func (m appModel) startNotesEdit() (tea.Model, tea.Cmd) {
	raw, ok := m.composer.StartEdit(finstmt.NotesField)
	if !ok {
		m.status = "editing is disabled while the report regenerates"
		return m, nil
	}
	m.focus = focusNotes
	m.notes.SetValue(raw)
	m.notes.Focus()
	m.status = "esc closes the notes editor"
	return m, textarea.Blink
}

func (m appModel) updateField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.composer.EndEdit(m.ref())
		m.input.Blur()
		m.focus = focusBrowse
		m.status = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.pushValue(m.ref(), m.input.Value(), func(raw string) {
		m.input.SetValue(raw)
		m.input.CursorEnd()
	})
	return m, cmd
}

func (m appModel) updateNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeNotes(), nil
	case "ctrl+s":
		return m.closeNotes().save()
	}
	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	m.pushValue(finstmt.NotesField, m.notes.Value(), func(raw string) {
		m.notes.SetValue(raw)
	})
	return m, cmd
}

func (m appModel) closeNotes() appModel {
	m.composer.EndEdit(finstmt.NotesField)
	m.notes.Blur()
	m.focus = focusBrowse
	m.status = ""
	m.preview = m.renderPreview()
	return m
}

// pushValue feeds the live editor text through the composer. Text already
// seen is skipped, accepted text commits, and when cleaning changed the
// text the editor snaps to the cleaned form via resync.
func (m *appModel) pushValue(ref finstmt.FieldRef, candidate string, resync func(string)) {
	if raw, ok := m.composer.Session().Raw(ref); ok && raw == candidate {
		return
	}
	if !m.composer.ValueChanged(ref, candidate) {
		return
	}
	m.dirty = true
	if raw, ok := m.composer.Session().Raw(ref); ok && raw != candidate {
		resync(raw)
	}
}

func (m appModel) save() (tea.Model, tea.Cmd) {
	if err := finstmt.WriteReportFile(m.path, m.composer.Data()); err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	m.dirty = false
	m.status = fmt.Sprintf("saved %s", m.path)
	return m, nil
}
