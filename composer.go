package finstmt

import (
	"github.com/finstmt/finstmt/notes"
)

// Composer binds the canonical report, the edit session and the parsed
// notes into the visible report. Edit events flow through it: start-edit
// and value-changed run the session's pipeline, committed values are pushed
// into an immutable copy of the model, and every Snapshot recomputes the
// derived rows and re-parses the notes text from scratch.
//
// A Composer is single-threaded by design: all operations run synchronously
// on the caller's event delivery order, and last committed write wins per
// field. The busy flag only disables interaction while an external
// collaborator works; the Composer owns none of that scheduling.
type Composer struct {
	data    *ReportData
	session *Session
	style   AmountStyle
	busy    bool

	// OnItemsChange is called after a committed row edit, with the section
	// and its rows. OnDataChange is called after any committed change,
	// with a copy of the new canonical report. Either may be nil.
	OnItemsChange func(Section, []FinancialItem)
	OnDataChange  func(*ReportData)
}

// NewComposer starts a composer over its own copy of data, with default
// limits and the statement formatting convention.
func NewComposer(data *ReportData) *Composer {
	return &Composer{
		data:    data.Clone(),
		session: NewSession(DefaultLimits()),
		style:   StyleStatement,
	}
}

// Session exposes the edit session to views that render pending state.
func (c *Composer) Session() *Session { return c.session }

// Data returns the current canonical report. Callers must treat it as
// read-only; every mutation goes through ValueChanged.
func (c *Composer) Data() *ReportData { return c.data }

// SetLimits replaces the field length limits, typically from host
// configuration.
func (c *Composer) SetLimits(l Limits) { c.session.limits = l }

// SetStyle selects the formatting convention of the hosting view, used
// whenever a committed amount is rendered or reformatted.
func (c *Composer) SetStyle(st AmountStyle) { c.style = st }

// Style returns the hosting view's formatting convention.
func (c *Composer) Style() AmountStyle { return c.style }

// SetBusy reflects the pending status of an external collaborator. While
// busy, start-edit and value-changed are ignored.
func (c *Composer) SetBusy(b bool) { c.busy = b }

// Busy reports whether interaction is currently disabled.
func (c *Composer) Busy() bool { return c.busy }

// Replace swaps in a wholesale new report, as after regeneration. All
// pending edits are dropped.
func (c *Composer) Replace(data *ReportData) {
	c.data = data.Clone()
	c.session.Reset()
	c.notifyData()
}

// StartEdit begins editing a field and returns the raw text the editor
// starts from. It reports false, doing nothing, while busy or for a field
// that does not exist.
func (c *Composer) StartEdit(ref FieldRef) (string, bool) {
	if c.busy || !c.valid(ref) {
		return "", false
	}
	return c.session.StartEdit(ref, c.committedRaw(ref)), true
}

// ValueChanged feeds new text for a field being edited. The text is
// cleaned for the field's kind; acceptable text is committed into the
// model immediately, anything else only updates the pending record and
// leaves the model on its last committed value. It reports whether a
// commit happened.
func (c *Composer) ValueChanged(ref FieldRef, input string) bool {
	if c.busy || !c.valid(ref) {
		return false
	}
	clean, ok := c.session.ValueChanged(ref, input)
	if !ok {
		return false
	}
	c.commit(ref, clean)
	return true
}

// EndEdit leaves edit mode on a field and returns its display text,
// reformatted from the committed value in the hosting view's convention.
func (c *Composer) EndEdit(ref FieldRef) string {
	c.session.EndEdit(ref)
	return c.DisplayText(ref)
}

// DisplayText returns what a view shows for a field right now: the pending
// raw text while a record exists, the formatted committed value otherwise.
func (c *Composer) DisplayText(ref FieldRef) string {
	if raw, ok := c.session.Raw(ref); ok {
		return raw
	}
	switch ref.Kind {
	case KindCompanyName:
		return c.data.CompanyName
	case KindABN:
		return c.data.ABN
	case KindNotes:
		return c.data.Notes
	}
	items := c.data.Items(ref.Section)
	if ref.Row < 0 || ref.Row >= len(items) {
		return ""
	}
	it := items[ref.Row]
	switch ref.Kind {
	case KindItem:
		return it.Item
	case KindAmount2025:
		return c.style.Format(it.Amount2025)
	case KindAmount2024:
		return c.style.Format(it.Amount2024)
	}
	return ""
}

// valid reports whether ref addresses an existing field of the current
// report.
func (c *Composer) valid(ref FieldRef) bool {
	if !ref.Kind.RowKind() {
		return true
	}
	return ref.Row >= 0 && ref.Row < len(c.data.Items(ref.Section))
}

// committedRaw is the bare committed text of a field, before any display
// formatting: labels and free text verbatim, amounts as plain numbers.
func (c *Composer) committedRaw(ref FieldRef) string {
	switch ref.Kind {
	case KindCompanyName:
		return c.data.CompanyName
	case KindABN:
		return c.data.ABN
	case KindNotes:
		return c.data.Notes
	}
	items := c.data.Items(ref.Section)
	if ref.Row < 0 || ref.Row >= len(items) {
		return ""
	}
	it := items[ref.Row]
	switch ref.Kind {
	case KindItem:
		return it.Item
	case KindAmount2025:
		return editText(it.Amount2025)
	case KindAmount2024:
		return editText(it.Amount2024)
	}
	return ""
}

// commit pushes one cleaned value into an immutable copy of the model and
// publishes the copy. Numeric text parses with a default of 0; the income
// statement's stored bottom line is refreshed whenever a row amount
// changes it.
func (c *Composer) commit(ref FieldRef, clean string) {
	clone := c.data.Clone()
	switch ref.Kind {
	case KindCompanyName:
		clone.CompanyName = clean
	case KindABN:
		clone.ABN = clean
	case KindNotes:
		clone.Notes = clean
	case KindItem:
		clone.Items(ref.Section)[ref.Row].Item = clean
	case KindAmount2025:
		clone.Items(ref.Section)[ref.Row].Amount2025 = ParseAmount(clean)
	case KindAmount2024:
		clone.Items(ref.Section)[ref.Row].Amount2024 = ParseAmount(clean)
	}
	if ref.Kind.Numeric() && (ref.Section == SectionRevenue || ref.Section == SectionExpenses) {
		refreshNetProfit(clone)
	}
	c.data = clone

	if ref.Kind.RowKind() && c.OnItemsChange != nil {
		c.OnItemsChange(ref.Section, cloneItems(c.data.Items(ref.Section)))
	}
	c.notifyData()
}

func (c *Composer) notifyData() {
	if c.OnDataChange != nil {
		c.OnDataChange(c.data.Clone())
	}
}

// refreshNetProfit recomputes the stored bottom line from the current
// revenue and expense rows, keeping its label.
func refreshNetProfit(r *ReportData) {
	rev25, rev24 := sumItems(r.IncomeStatement.Revenue)
	exp25, exp24 := sumItems(r.IncomeStatement.Expenses)
	r.IncomeStatement.NetProfit.Amount2025 = rev25 - exp25
	r.IncomeStatement.NetProfit.Amount2024 = rev24 - exp24
}

// sumItems totals a section's amounts for both comparative years.
func sumItems(items []FinancialItem) (y25, y24 float64) {
	for _, it := range items {
		y25 += it.Amount2025
		y24 += it.Amount2024
	}
	return y25, y24
}
