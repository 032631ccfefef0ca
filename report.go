package finstmt

// Section identifies one row-bearing part of the report.
type Section int

const (
	SectionRevenue Section = iota
	SectionExpenses
	SectionAssets
	SectionLiabilities
	SectionEquity
)

// sections in document order.
var sections = []Section{
	SectionRevenue,
	SectionExpenses,
	SectionAssets,
	SectionLiabilities,
	SectionEquity,
}

func (s Section) String() string {
	switch s {
	case SectionRevenue:
		return "revenue"
	case SectionExpenses:
		return "expenses"
	case SectionAssets:
		return "assets"
	case SectionLiabilities:
		return "liabilities"
	case SectionEquity:
		return "equity"
	}
	return "unknown"
}

// FinancialItem is one report line: a label with its two comparative-year
// amounts, optionally cross-referenced to a numbered note in the notes text.
// A NoteRef with no matching note anchor is a silent broken link, not an
// error.
type FinancialItem struct {
	Item       string  `json:"item"`
	Amount2025 float64 `json:"amount2025"`
	Amount2024 float64 `json:"amount2024"`
	NoteRef    int     `json:"noteRef,omitempty"`
}

func (it FinancialItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("item", it.Item)
	w.Append("amount2025", roundAmount(it.Amount2025))
	w.Append("amount2024", roundAmount(it.Amount2024))
	w.Optional("noteRef", it.NoteRef)
	return w.MarshalJSON()
}

// IncomeStatement holds the profit and loss rows. NetProfit is kept in the
// canonical data so exports see the same bottom line as the display; its
// amounts are refreshed from the revenue and expense sums whenever a
// committed edit changes them.
type IncomeStatement struct {
	Revenue   []FinancialItem `json:"revenue"`
	Expenses  []FinancialItem `json:"expenses"`
	NetProfit FinancialItem   `json:"netProfit"`
}

// BalanceSheet holds the financial position rows.
type BalanceSheet struct {
	Assets      []FinancialItem `json:"assets"`
	Liabilities []FinancialItem `json:"liabilities"`
	Equity      []FinancialItem `json:"equity"`
}

// ReportData is the canonical report document. It is produced whole by the
// report generator, replaced wholesale on regeneration, and otherwise only
// changed through immutable-copy updates made by the Composer.
type ReportData struct {
	CompanyName     string          `json:"companyName"`
	ABN             string          `json:"abn,omitempty"`
	IncomeStatement IncomeStatement `json:"incomeStatement"`
	BalanceSheet    BalanceSheet    `json:"balanceSheet"`
	Notes           string          `json:"notesToFinancialStatements"`
}

// NewReport returns a starter report: one placeholder row per section and
// a notes skeleton, ready to be filled in by hand.
func NewReport() *ReportData {
	return &ReportData{
		CompanyName: "New Company Pty Ltd",
		IncomeStatement: IncomeStatement{
			Revenue:   []FinancialItem{{Item: "Sales revenue"}},
			Expenses:  []FinancialItem{{Item: "Operating expenses"}},
			NetProfit: FinancialItem{Item: "Net profit for the year"},
		},
		BalanceSheet: BalanceSheet{
			Assets:      []FinancialItem{{Item: "Cash and cash equivalents", NoteRef: 2}},
			Liabilities: []FinancialItem{{Item: "Trade and other payables"}},
			Equity:      []FinancialItem{{Item: "Retained earnings"}},
		},
		Notes: "**Note 1: Basis of Preparation**\n\n" +
			"The financial statements are special purpose statements prepared on an accruals basis.\n\n" +
			"**Note 2: Cash and Cash Equivalents**\n\n" +
			"| Source | 2025 | 2024 |\n|:---|---:|---:|\n| Cash at bank | 0 | 0 |",
	}
}

// Items returns the rows of one section. The slice is the live backing
// array; callers that mutate rows must work on a Clone.
func (r *ReportData) Items(sec Section) []FinancialItem {
	switch sec {
	case SectionRevenue:
		return r.IncomeStatement.Revenue
	case SectionExpenses:
		return r.IncomeStatement.Expenses
	case SectionAssets:
		return r.BalanceSheet.Assets
	case SectionLiabilities:
		return r.BalanceSheet.Liabilities
	case SectionEquity:
		return r.BalanceSheet.Equity
	}
	return nil
}

// Clone returns a deep copy of the report. Row slices are copied so that
// editing the clone never shows through the original.
func (r *ReportData) Clone() *ReportData {
	c := *r
	c.IncomeStatement.Revenue = cloneItems(r.IncomeStatement.Revenue)
	c.IncomeStatement.Expenses = cloneItems(r.IncomeStatement.Expenses)
	c.BalanceSheet.Assets = cloneItems(r.BalanceSheet.Assets)
	c.BalanceSheet.Liabilities = cloneItems(r.BalanceSheet.Liabilities)
	c.BalanceSheet.Equity = cloneItems(r.BalanceSheet.Equity)
	return &c
}

func cloneItems(items []FinancialItem) []FinancialItem {
	if items == nil {
		return nil
	}
	out := make([]FinancialItem, len(items))
	copy(out, items)
	return out
}

// Sanitized returns a copy with every free-text field run through
// SanitizeText. Generated payloads pass through here before they are first
// saved; user edits are sanitized keystroke by keystroke instead.
func (r *ReportData) Sanitized() *ReportData {
	c := r.Clone()
	c.CompanyName = SanitizeText(c.CompanyName)
	c.ABN = SanitizeText(c.ABN)
	c.Notes = SanitizeText(c.Notes)
	c.IncomeStatement.NetProfit.Item = SanitizeText(c.IncomeStatement.NetProfit.Item)
	for _, sec := range sections {
		items := c.Items(sec)
		for i := range items {
			items[i].Item = SanitizeText(items[i].Item)
		}
	}
	return c
}
