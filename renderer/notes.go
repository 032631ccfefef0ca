package renderer

import (
	"bytes"

	"github.com/finstmt/finstmt/notes"
	md "github.com/nao1215/markdown"
)

// NotesMarkdown renders parsed note blocks back to markdown. Heading levels
// map one step below the report's own sections so the notes nest inside the
// full document.
func NotesMarkdown(blocks []notes.Block) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeBlocks(doc, blocks)
	return doc.String()
}

func writeBlocks(doc *md.Markdown, blocks []notes.Block) {
	for _, b := range blocks {
		switch b := b.(type) {
		case notes.Heading:
			writeHeading(doc, b)
		case notes.Paragraph:
			doc.PlainText(b.Text)
		case notes.Table:
			doc.Table(noteTable(b))
		}
	}
}

func writeHeading(doc *md.Markdown, h notes.Heading) {
	switch h.Level {
	case notes.LevelSection:
		doc.H3(h.Text)
	case notes.LevelNote:
		doc.H4(h.Text)
	default:
		doc.H5(h.Text)
	}
}

func noteTable(t notes.Table) md.TableSet {
	set := md.TableSet{Header: make([]string, 0, len(t.Header))}
	for _, c := range t.Header {
		set.Header = append(set.Header, noteCellText(c))
	}
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, noteCellText(c))
		}
		set.Rows = append(set.Rows, cells)
	}
	return set
}

func noteCellText(c notes.Cell) string {
	if c.Bold && c.Text != "" {
		return md.Bold(c.Text)
	}
	return c.Text
}
