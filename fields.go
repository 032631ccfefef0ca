package finstmt

// FieldKind is the closed set of editable field kinds. Each kind knows how
// to clean raw input and whether it holds a number, so nothing dispatches
// on field-name strings.
type FieldKind int

const (
	KindItem FieldKind = iota
	KindAmount2025
	KindAmount2024
	KindCompanyName
	KindABN
	KindNotes
)

func (k FieldKind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindAmount2025:
		return "amount2025"
	case KindAmount2024:
		return "amount2024"
	case KindCompanyName:
		return "companyName"
	case KindABN:
		return "abn"
	case KindNotes:
		return "notes"
	}
	return "unknown"
}

// Numeric reports whether the kind holds an amount.
func (k FieldKind) Numeric() bool {
	return k == KindAmount2025 || k == KindAmount2024
}

// Clean runs raw input through the pipeline for this kind: amounts keep
// only numeric characters, text is sanitized. No keystroke reaches the
// model any other way.
func (k FieldKind) Clean(s string) string {
	if k.Numeric() {
		return FilterNumericText(s)
	}
	return SanitizeText(s)
}

// RowKind reports whether the kind addresses a section row rather than a
// report-wide field.
func (k FieldKind) RowKind() bool {
	return k == KindItem || k.Numeric()
}

// FieldRef addresses one editable field of the report. Section and Row are
// meaningful for row kinds only and stay zero otherwise.
type FieldRef struct {
	Section Section
	Row     int
	Kind    FieldKind
}

// Report-wide fields.
var (
	CompanyNameField = FieldRef{Kind: KindCompanyName}
	ABNField         = FieldRef{Kind: KindABN}
	NotesField       = FieldRef{Kind: KindNotes}
)

// RowField addresses one cell of a section row.
func RowField(sec Section, row int, kind FieldKind) FieldRef {
	return FieldRef{Section: sec, Row: row, Kind: kind}
}

// Limits bounds the accepted length of each field kind, in runes. The zero
// value means "use the default"; hosts may override from configuration.
type Limits struct {
	Item        int `yaml:"item"`
	Amount      int `yaml:"amount"`
	CompanyName int `yaml:"companyName"`
	ABN         int `yaml:"abn"`
	Notes       int `yaml:"notes"`
}

// DefaultLimits returns the stock field length limits.
func DefaultLimits() Limits {
	return Limits{
		Item:        80,
		Amount:      20,
		CompanyName: 100,
		ABN:         20,
		Notes:       20000,
	}
}

// For returns the limit for one field kind, falling back to the default
// where the receiver leaves it zero.
func (l Limits) For(k FieldKind) int {
	d := DefaultLimits()
	pick := func(v, def int) int {
		if v > 0 {
			return v
		}
		return def
	}
	switch k {
	case KindItem:
		return pick(l.Item, d.Item)
	case KindAmount2025, KindAmount2024:
		return pick(l.Amount, d.Amount)
	case KindCompanyName:
		return pick(l.CompanyName, d.CompanyName)
	case KindABN:
		return pick(l.ABN, d.ABN)
	case KindNotes:
		return pick(l.Notes, d.Notes)
	}
	return 0
}
