package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/finstmt/finstmt"
	"github.com/finstmt/finstmt/notes"
	"github.com/google/subcommands"
)

func TestNewCreatesStarterReport(t *testing.T) {
	name := filepath.Join(t.TempDir(), "report.json")
	useReportFile(t, name)

	cmd := &newCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	r, err := finstmt.ReadReportFile(name)
	if err != nil {
		t.Fatalf("Failed to read created report: %v", err)
	}
	if r.CompanyName != "New Company Pty Ltd" {
		t.Errorf("company = %q, want the starter name", r.CompanyName)
	}
	for _, sec := range []struct {
		name string
		rows []finstmt.FinancialItem
	}{
		{"revenue", r.IncomeStatement.Revenue},
		{"expenses", r.IncomeStatement.Expenses},
		{"assets", r.BalanceSheet.Assets},
		{"liabilities", r.BalanceSheet.Liabilities},
		{"equity", r.BalanceSheet.Equity},
	} {
		if len(sec.rows) != 1 {
			t.Errorf("starter %s has %d rows, want 1", sec.name, len(sec.rows))
		}
	}
	anchors := notes.Anchors(notes.Parse(r.Notes))
	if anchors[2] == "" {
		t.Error("starter notes have no anchor for note 2")
	}
}

func TestNewRefusesToOverwrite(t *testing.T) {
	name := createTempReport(t, `{"companyName":"Keep Me"}`)
	useReportFile(t, name)

	cmd := &newCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitFailure {
		t.Fatalf("Expected ExitFailure, got %v", status)
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"companyName":"Keep Me"}` {
		t.Error("refused overwrite still changed the file")
	}
}

func TestNewForceOverwrites(t *testing.T) {
	name := createTempReport(t, `{"companyName":"Old"}`)
	useReportFile(t, name)

	cmd := &newCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("force", "true")

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	r, err := finstmt.ReadReportFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if r.CompanyName != "New Company Pty Ltd" {
		t.Errorf("company after -force = %q, want the starter name", r.CompanyName)
	}
}
