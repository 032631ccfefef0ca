package finstmt

import "github.com/finstmt/finstmt/notes"

// Snapshot is the fully composed visible report: every section's rows with
// their current display text, the derived total rows, and the notes text
// parsed into blocks with its anchors. It is a stateless view computed
// on-the-fly from the model and the edit session; derived values are never
// cached, so a committed edit is reflected in the totals of the very next
// snapshot.
type Snapshot struct {
	CompanyName string
	ABN         string
	Sections    []SectionView
	NetProfit   Row
	NetAssets   Row
	Blocks      []notes.Block
	Anchors     map[int]string
	Busy        bool
}

// SectionView is one section table: its editable rows and the derived
// total row.
type SectionView struct {
	Section Section
	Title   string
	Rows    []Row
	Total   Row
}

// Row is one visible report line. Editable rows carry the index that
// addresses them; derived rows recompute on every snapshot, render bold,
// and have Index -1.
type Row struct {
	Section    Section
	Index      int
	Label      string
	Amount2025 string
	Amount2024 string
	NoteRef    int
	Anchor     string
	Derived    bool
	Bold       bool
}

// Snapshot composes the visible report from the current model, the pending
// edits and the notes text. The notes are re-parsed in full on every call.
func (c *Composer) Snapshot() *Snapshot {
	blocks := notes.Parse(c.DisplayText(NotesField))
	anchors := notes.Anchors(blocks)

	s := &Snapshot{
		CompanyName: c.DisplayText(CompanyNameField),
		ABN:         c.DisplayText(ABNField),
		Blocks:      blocks,
		Anchors:     anchors,
		Busy:        c.busy,
	}
	for _, sec := range sections {
		s.Sections = append(s.Sections, c.sectionView(sec, anchors))
	}

	rev25, rev24 := sumItems(c.data.IncomeStatement.Revenue)
	exp25, exp24 := sumItems(c.data.IncomeStatement.Expenses)
	s.NetProfit = c.derivedRow(c.data.IncomeStatement.NetProfit.Item, rev25-exp25, rev24-exp24)

	a25, a24 := sumItems(c.data.BalanceSheet.Assets)
	l25, l24 := sumItems(c.data.BalanceSheet.Liabilities)
	s.NetAssets = c.derivedRow("Net assets", a25-l25, a24-l24)

	return s
}

func (c *Composer) sectionView(sec Section, anchors map[int]string) SectionView {
	items := c.data.Items(sec)
	rows := make([]Row, len(items))
	for i, it := range items {
		anchor := ""
		if it.NoteRef > 0 {
			// a missing anchor leaves the reference dangling, not an error
			anchor = anchors[it.NoteRef]
		}
		rows[i] = Row{
			Section:    sec,
			Index:      i,
			Label:      c.DisplayText(RowField(sec, i, KindItem)),
			Amount2025: c.DisplayText(RowField(sec, i, KindAmount2025)),
			Amount2024: c.DisplayText(RowField(sec, i, KindAmount2024)),
			NoteRef:    it.NoteRef,
			Anchor:     anchor,
		}
	}
	t25, t24 := sumItems(items)
	view := SectionView{Section: sec, Title: sectionTitle(sec), Rows: rows}
	view.Total = c.derivedRow(totalLabel(sec), t25, t24)
	view.Total.Section = sec
	return view
}

func (c *Composer) derivedRow(label string, y25, y24 float64) Row {
	return Row{
		Index:      -1,
		Label:      label,
		Amount2025: c.style.Format(y25),
		Amount2024: c.style.Format(y24),
		Derived:    true,
		Bold:       true,
	}
}

func sectionTitle(sec Section) string {
	switch sec {
	case SectionRevenue:
		return "Revenue"
	case SectionExpenses:
		return "Expenses"
	case SectionAssets:
		return "Assets"
	case SectionLiabilities:
		return "Liabilities"
	case SectionEquity:
		return "Equity"
	}
	return ""
}

func totalLabel(sec Section) string {
	switch sec {
	case SectionRevenue:
		return "Total Income"
	case SectionExpenses:
		return "Total Expenses"
	case SectionAssets:
		return "Total Assets"
	case SectionLiabilities:
		return "Total Liabilities"
	case SectionEquity:
		return "Total Equity"
	}
	return ""
}
