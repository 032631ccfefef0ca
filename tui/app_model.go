package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/finstmt/finstmt"
)

// focusArea says which part of the screen owns the keyboard.
type focusArea int

const (
	focusBrowse focusArea = iota // moving between fields
	focusField                   // editing a one-line field in the input
	focusNotes                   // editing the notes text in the textarea
)

// fieldLine is one navigable line of the editor: its editable cells, left
// to right. Report-wide fields have one cell, section rows have three.
type fieldLine struct {
	refs []finstmt.FieldRef
}

// appModel is the bubbletea model of the editor. It is a value type: Update
// returns the modified copy, and the composer pointer carries the shared
// state across copies.
type appModel struct {
	path     string
	composer *finstmt.Composer

	lines []fieldLine
	line  int
	col   int

	focus focusArea
	input textinput.Model
	notes textarea.Model

	width      int
	height     int
	notesWidth int
	preview    string

	status      string
	dirty       bool
	pendingQuit bool
}

func newAppModel(path string, c *finstmt.Composer) appModel {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 0 // the composer enforces the field limits
	input.Width = 32

	notes := textarea.New()
	notes.CharLimit = 0
	notes.ShowLineNumbers = false
	notes.SetWidth(previewWidth)
	notes.SetHeight(8)

	m := appModel{
		path:       path,
		composer:   c,
		lines:      buildLines(c),
		input:      input,
		notes:      notes,
		notesWidth: previewWidth,
	}
	m.preview = m.renderPreview()
	return m
}

// buildLines lays out the navigable fields: company name, ABN, then every
// section row in document order. Derived rows are displayed but never
// navigated.
func buildLines(c *finstmt.Composer) []fieldLine {
	lines := []fieldLine{
		{refs: []finstmt.FieldRef{finstmt.CompanyNameField}},
		{refs: []finstmt.FieldRef{finstmt.ABNField}},
	}
	for _, sec := range c.Snapshot().Sections {
		for i := range sec.Rows {
			lines = append(lines, fieldLine{refs: []finstmt.FieldRef{
				finstmt.RowField(sec.Section, i, finstmt.KindItem),
				finstmt.RowField(sec.Section, i, finstmt.KindAmount2025),
				finstmt.RowField(sec.Section, i, finstmt.KindAmount2024),
			}})
		}
	}
	return lines
}

// ref is the field under the cursor.
func (m appModel) ref() finstmt.FieldRef {
	return m.lines[m.line].refs[m.colAt(m.line)]
}

// colAt clamps the remembered column to the cells line actually has, so the
// column survives moving through one-cell lines.
func (m appModel) colAt(line int) int {
	if n := len(m.lines[line].refs); m.col >= n {
		return n - 1
	}
	return m.col
}
