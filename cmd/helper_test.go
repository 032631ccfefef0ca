package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/finstmt/finstmt"
)

// createTempReport writes content to a report file in a fresh temp dir and
// returns its path.
func createTempReport(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp report: %v", err)
	}
	return name
}

// useReportFile points the app's report file at name for one test.
func useReportFile(t *testing.T, name string) {
	t.Helper()
	old := reportFile
	reportFile = &name
	t.Cleanup(func() { reportFile = old })
}

func sampleReportData() *finstmt.ReportData {
	return &finstmt.ReportData{
		CompanyName: "Acme Trading Pty Ltd",
		ABN:         "51 824 753 556",
		IncomeStatement: finstmt.IncomeStatement{
			Revenue: []finstmt.FinancialItem{
				{Item: "Sales revenue", Amount2025: 120000, Amount2024: 100000},
				{Item: "Interest income", Amount2025: 4500, Amount2024: 4000, NoteRef: 2},
			},
			Expenses: []finstmt.FinancialItem{
				{Item: "Employee benefits expense", Amount2025: 60000, Amount2024: 55000},
			},
			NetProfit: finstmt.FinancialItem{Item: "Net profit for the year", Amount2025: 64500, Amount2024: 49000},
		},
		BalanceSheet: finstmt.BalanceSheet{
			Assets:      []finstmt.FinancialItem{{Item: "Cash and cash equivalents", Amount2025: 80000, Amount2024: 60000}},
			Liabilities: []finstmt.FinancialItem{{Item: "Trade and other payables", Amount2025: 20000, Amount2024: 15000}},
			Equity:      []finstmt.FinancialItem{{Item: "Retained earnings", Amount2025: 60000, Amount2024: 45000}},
		},
		Notes: "**Note 1: Basis of Preparation**\n\nThe report is prepared on an accruals basis.\n\n" +
			"**Note 2: Interest Income**\n\nInterest accrues on term deposits.",
	}
}
