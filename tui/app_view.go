package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/finstmt/finstmt"
	"github.com/finstmt/finstmt/renderer"
)

const (
	metaWidth       = 14
	labelWidth      = 38
	amountWidth     = 13
	previewWidth    = 76
	previewMaxLines = 14
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	derivedStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	metaCell     = lipgloss.NewStyle().Width(metaWidth).Faint(true)
	labelCell    = lipgloss.NewStyle().Width(labelWidth)
	amountCell   = lipgloss.NewStyle().Width(amountWidth).Align(lipgloss.Right)
)

func (m appModel) View() string {
	snap := m.composer.Snapshot()
	var b strings.Builder

	idx := 0
	b.WriteString(m.metaLine(&idx, "Company name", snap.CompanyName))
	b.WriteString(m.metaLine(&idx, "ABN", snap.ABN))
	b.WriteString("\n")

	b.WriteString(labelCell.Render("") + amountCell.Render("2025") + amountCell.Render("2024") + "\n")
	for _, sec := range snap.Sections {
		b.WriteString(sectionStyle.Render(sec.Title) + "\n")
		for _, row := range sec.Rows {
			b.WriteString(m.rowLine(&idx, row))
		}
		b.WriteString(derivedLine(sec.Total))
		if sec.Section == finstmt.SectionExpenses {
			b.WriteString(derivedLine(snap.NetProfit))
		}
		if sec.Section == finstmt.SectionLiabilities {
			b.WriteString(derivedLine(snap.NetAssets))
		}
		b.WriteString("\n")
	}

	if m.focus == focusNotes {
		b.WriteString(sectionStyle.Render("Notes") + "\n")
		b.WriteString(m.notes.View() + "\n")
	} else {
		b.WriteString(sectionStyle.Render("Notes") + mutedStyle.Render("  n to edit") + "\n")
		b.WriteString(m.preview + "\n")
	}

	b.WriteString("\n" + m.statusLine(snap))
	return b.String()
}

// metaLine renders a report-wide field with its name in the gutter. idx
// advances in the same order buildLines laid the cursor lines out.
func (m appModel) metaLine(idx *int, name, value string) string {
	line := *idx
	(*idx)++
	return metaCell.Render(name) + m.cell(line, 0, value, labelCell) + "\n"
}

// rowLine renders one editable section row.
func (m appModel) rowLine(idx *int, row finstmt.Row) string {
	line := *idx
	(*idx)++
	label := row.Label
	if row.NoteRef > 0 {
		label += fmt.Sprintf(" (%d)", row.NoteRef)
	}
	return m.cell(line, 0, label, labelCell) +
		m.cell(line, 1, row.Amount2025, amountCell) +
		m.cell(line, 2, row.Amount2024, amountCell) + "\n"
}

func derivedLine(row finstmt.Row) string {
	return derivedStyle.Render(
		labelCell.Render(row.Label)+amountCell.Render(row.Amount2025)+amountCell.Render(row.Amount2024),
	) + "\n"
}

// cell renders one field cell: the live input when it is being edited, a
// highlighted cell under the cursor, plain text otherwise.
func (m appModel) cell(line, col int, text string, base lipgloss.Style) string {
	if m.line == line && m.colAt(line) == col {
		if m.focus == focusField {
			return base.Render(m.input.View())
		}
		return base.Reverse(true).Render(text)
	}
	return base.Render(text)
}

func (m appModel) renderPreview() string {
	w := m.notesWidth
	if w < 20 {
		w = previewWidth
	}
	src := renderer.NotesMarkdown(m.composer.Snapshot().Blocks)
	if strings.TrimSpace(src) == "" {
		return mutedStyle.Render("no notes yet")
	}
	return clipLines(renderMarkdown(src, w), previewMaxLines)
}

func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n") + "\n" + mutedStyle.Render("…")
}

func (m appModel) statusLine(snap *finstmt.Snapshot) string {
	name := m.path
	if m.dirty {
		name += " *"
	}
	mode := "statement amounts"
	if m.composer.Style() == finstmt.StyleCompliance {
		mode = "compliance amounts"
	}
	parts := []string{name, mode}
	if snap.Busy {
		parts = append(parts, "regenerating, input disabled")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	help := "enter edit   n notes   $ style   ctrl+s save   q quit"
	return strings.Join(parts, "   ") + "\n" + mutedStyle.Render(help)
}
