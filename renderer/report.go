package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/finstmt/finstmt"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the whole report as one markdown document: the
// income statement, the balance sheet, then the notes.
func ReportMarkdown(s *finstmt.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(s.CompanyName)
	if s.ABN != "" {
		doc.PlainText(fmt.Sprintf("ABN %s", s.ABN))
	}

	writeStatement(doc, s)
	writeBalance(doc, s)

	if len(s.Blocks) > 0 {
		doc.H2("Notes to the Financial Statements")
		writeBlocks(doc, s.Blocks)
	}

	return doc.String()
}

// StatementMarkdown renders the income statement on its own.
func StatementMarkdown(s *finstmt.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeStatement(doc, s)
	return doc.String()
}

// BalanceMarkdown renders the balance sheet on its own.
func BalanceMarkdown(s *finstmt.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeBalance(doc, s)
	return doc.String()
}

func writeStatement(doc *md.Markdown, s *finstmt.Snapshot) {
	doc.H2("Income Statement")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignCenter,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"", "Note", "2025", "2024"},
	}
	for _, sec := range s.Sections {
		if sec.Section != finstmt.SectionRevenue && sec.Section != finstmt.SectionExpenses {
			continue
		}
		for _, row := range sec.Rows {
			table.Rows = append(table.Rows, tableRow(row))
		}
		table.Rows = append(table.Rows, tableRow(sec.Total))
	}
	table.Rows = append(table.Rows, tableRow(s.NetProfit))
	doc.Table(table)
}

func writeBalance(doc *md.Markdown, s *finstmt.Snapshot) {
	doc.H2("Balance Sheet")

	for _, sec := range s.Sections {
		switch sec.Section {
		case finstmt.SectionAssets, finstmt.SectionLiabilities, finstmt.SectionEquity:
		default:
			continue
		}

		doc.H3(sec.Title)
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignCenter,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"", "Note", "2025", "2024"},
		}
		for _, row := range sec.Rows {
			table.Rows = append(table.Rows, tableRow(row))
		}
		table.Rows = append(table.Rows, tableRow(sec.Total))
		doc.Table(table)

		// Net assets sits between liabilities and equity, as on the
		// printed statement.
		if sec.Section == finstmt.SectionLiabilities {
			doc.Table(md.TableSet{
				Alignment: []md.TableAlignment{
					md.AlignLeft,
					md.AlignRight,
					md.AlignRight,
				},
				Header: []string{
					bold(s.NetAssets.Label),
					bold(s.NetAssets.Amount2025),
					bold(s.NetAssets.Amount2024),
				},
			})
		}
	}
}

func tableRow(r finstmt.Row) []string {
	label := escapeCell(r.Label)
	y25, y24 := r.Amount2025, r.Amount2024
	if r.Bold {
		label, y25, y24 = bold(label), bold(y25), bold(y24)
	}
	return []string{label, noteCell(r), y25, y24}
}

// bold wraps non-empty text; bolding an empty cell would leave bare markers.
func bold(s string) string {
	if s == "" {
		return ""
	}
	return md.Bold(s)
}

// noteCell renders the row's note reference: a link when the note exists in
// the parsed notes, plain text when it dangles.
func noteCell(r finstmt.Row) string {
	if r.NoteRef <= 0 {
		return ""
	}
	if r.Anchor != "" {
		return fmt.Sprintf("[%d](#%s)", r.NoteRef, r.Anchor)
	}
	return strconv.Itoa(r.NoteRef)
}

// escapeCell keeps a literal pipe in a label from splitting the row.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
