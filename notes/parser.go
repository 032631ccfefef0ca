package notes

import "strings"

// Parse converts a notes blob into its ordered block sequence in a single
// forward pass. Blank lines separate blocks and are dropped. A delimited
// line directly above a valid separator opens a table; everything else
// becomes a heading or a paragraph. Parse never fails on malformed input,
// it only degrades.
func Parse(text string) []Block {
	lines := lex(text)
	var blocks []Block
	for i := 0; i < len(lines); i++ {
		l := lines[i]
		switch {
		case l.blank:
			// block separator, dropped
		case l.delimited && i+1 < len(lines) && lines[i+1].separator:
			table, consumed := buildTable(lines, i)
			blocks = append(blocks, table)
			i += consumed - 1
		case l.heading != nil:
			blocks = append(blocks, *l.heading)
		default:
			blocks = append(blocks, Paragraph{Text: l.text})
		}
	}
	return blocks
}

// buildTable assembles the table opening at lines[start]; the next line is
// the already validated separator. Every following delimited line is a data
// row, until the first line without a delimiter or the end of input. It
// reports how many lines it consumed.
func buildTable(lines []line, start int) (Table, int) {
	header := parseCells(lines[start].text)
	t := Table{Header: header}
	consumed := 2
	for i := start + 2; i < len(lines); i++ {
		if !lines[i].delimited {
			break
		}
		t.Rows = append(t.Rows, padCells(parseCells(lines[i].text), len(header)))
		consumed++
	}
	return t, consumed
}

// parseCells splits a delimited line into display cells.
func parseCells(text string) []Cell {
	raw := splitCells(text)
	cells := make([]Cell, len(raw))
	for i, r := range raw {
		cells[i] = cellOf(r)
	}
	return cells
}

// cellOf strips bold markers from a cell and flags it bold when any were
// present, whether the cell was fully or only partially wrapped.
func cellOf(text string) Cell {
	if !strings.Contains(text, "**") {
		return Cell{Text: text}
	}
	return Cell{Text: strings.TrimSpace(strings.ReplaceAll(text, "**", "")), Bold: true}
}

// padCells fits a row to the header width: short rows gain empty trailing
// cells, long rows are cut.
func padCells(cells []Cell, width int) []Cell {
	if len(cells) == width {
		return cells
	}
	if len(cells) > width {
		return cells[:width]
	}
	padded := make([]Cell, width)
	copy(padded, cells)
	return padded
}
