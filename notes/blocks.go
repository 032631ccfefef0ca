// Package notes parses the free-text notes of a financial report, written
// in a deliberately small markdown subset, into an ordered sequence of
// typed blocks: headings, paragraphs and tables.
//
// The subset is bit-exact and tiny. Table rows are `| cell | cell |` lines
// under a `|---|---|` separator (each separator cell is dashes, optionally
// flanked by colons). Bold spans use `**`. A line of the exact shape
// `**Note <digits>: <title>**` is a note heading whose anchor is
// addressable as note-<digits>, the target of a line item's NoteRef. There
// are no lists, links, nested emphasis or code blocks.
//
// Parsing is total: malformed structure degrades to the nearest simpler
// block (an unrecognized table becomes paragraphs, a malformed heading
// becomes a paragraph) and never fails. Blocks are ephemeral, recomputed
// from the notes text on every render and never persisted.
package notes

import "strconv"

// Heading levels, from section down to minor.
const (
	LevelSection = 2
	LevelNote    = 3
	LevelMinor   = 4
)

// Block is one structural element of the notes text.
type Block interface {
	block()
}

// Heading is a bold heading line. AnchorID carries the note number digits
// when the heading is a numbered note, and is empty otherwise.
type Heading struct {
	Level    int
	Text     string
	AnchorID string
}

// Paragraph is a plain run of text. Bold markers inside it are literal.
type Paragraph struct {
	Text string
}

// Table is a delimited table. Every row has exactly len(Header) cells;
// short rows are padded with empty cells and long rows truncated.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

// Cell is one table cell. Bold is set when the source cell carried bold
// markers; Text has the markers stripped.
type Cell struct {
	Text string
	Bold bool
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (Table) block()     {}

// Anchor returns the addressable anchor of a note heading, "note-<digits>",
// or an empty string for headings without one.
func (h Heading) Anchor() string {
	if h.AnchorID == "" {
		return ""
	}
	return "note-" + h.AnchorID
}

// Anchors collects the note anchors of a parsed notes text, keyed by note
// number. A NoteRef that is not a key here is a dangling reference.
func Anchors(blocks []Block) map[int]string {
	anchors := make(map[int]string)
	for _, b := range blocks {
		h, ok := b.(Heading)
		if !ok || h.AnchorID == "" {
			continue
		}
		n, err := strconv.Atoi(h.AnchorID)
		if err != nil {
			continue
		}
		anchors[n] = h.Anchor()
	}
	return anchors
}
