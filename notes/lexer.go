package notes

import (
	"regexp"
	"strings"
)

// The lexer classifies one line at a time, with no lookahead. Each line
// carries the facets the builder needs: whether it can open or continue a
// table, whether it is a valid header separator, and which heading it would
// make on its own. Grouping decisions, like the one-line lookahead that
// opens a table, belong to the builder.

// line is one lexed line of notes text.
type line struct {
	text      string
	blank     bool
	delimited bool     // contains a cell delimiter
	separator bool     // valid table separator row
	heading   *Heading // non-nil when the line alone is a heading
}

var (
	noteHeadingRe   = regexp.MustCompile(`^Note\s+(\d+):\s*(.+)$`)
	separatorCellRe = regexp.MustCompile(`^:?-+:?$`)
)

// lex splits a notes blob into classified lines.
func lex(text string) []line {
	raw := strings.Split(text, "\n")
	lines := make([]line, len(raw))
	for i, r := range raw {
		lines[i] = classify(r)
	}
	return lines
}

// classify lexes a single raw line.
func classify(raw string) line {
	text := strings.TrimSpace(raw)
	if text == "" {
		return line{blank: true}
	}
	l := line{text: text}
	l.delimited = strings.Contains(text, "|")
	l.separator = l.delimited && isSeparator(text)
	l.heading = headingOf(text)
	return l
}

// isSeparator reports whether a line is a valid table separator: every cell
// is dashes, optionally flanked by colons.
func isSeparator(text string) bool {
	for _, cell := range splitCells(text) {
		if !separatorCellRe.MatchString(cell) {
			return false
		}
	}
	return true
}

// splitCells cuts a delimited line into trimmed cell texts: one leading and
// one trailing delimiter are stripped, the rest split the line.
func splitCells(text string) []string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "|")
	text = strings.TrimSuffix(text, "|")
	parts := strings.Split(text, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// headingOf classifies a heading line, in priority order: a bold-wrapped
// "Note <digits>: <title>" is a note heading carrying its anchor, a bold
// marker followed by an opening parenthesis is a minor heading, and any
// other fully bold line is a section heading. Everything else is nil and
// falls back to a paragraph.
func headingOf(text string) *Heading {
	if inner, ok := boldWrapped(text); ok {
		if m := noteHeadingRe.FindStringSubmatch(inner); m != nil {
			return &Heading{Level: LevelNote, Text: inner, AnchorID: m[1]}
		}
		if strings.HasPrefix(inner, "(") {
			return &Heading{Level: LevelMinor, Text: inner}
		}
		return &Heading{Level: LevelSection, Text: inner}
	}
	if strings.HasPrefix(text, "**(") {
		return &Heading{Level: LevelMinor, Text: strings.ReplaceAll(text, "**", "")}
	}
	return nil
}

// boldWrapped returns the trimmed inner text of a line fully wrapped in a
// single pair of bold markers. Lines with further markers inside are not
// considered wrapped; their markers are literal text.
func boldWrapped(text string) (string, bool) {
	if len(text) <= 4 || !strings.HasPrefix(text, "**") || !strings.HasSuffix(text, "**") {
		return "", false
	}
	inner := text[2 : len(text)-2]
	if strings.Contains(inner, "**") {
		return "", false
	}
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return "", false
	}
	return inner, true
}
