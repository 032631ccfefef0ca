package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/finstmt/finstmt/generate"
)

type draftCmd struct {
	company string
	abn     string
	records string
	force   bool
}

func (*draftCmd) Name() string     { return "draft" }
func (*draftCmd) Synopsis() string { return "draft a report from raw source records with Gemini" }
func (*draftCmd) Usage() string {
	return `fst draft [-company <name>] [-abn <abn>] [-records <file>] [-force]

  Reads raw source records (bank lines, a trial balance, bookkeeping
  exports) and asks Gemini to draft a complete report from them. The draft
  is shape-checked and sanitized like any other untrusted input before it
  is written to the report file.

  Records are read from the -records file, or from stdin when omitted.
  The GEMINI_API_KEY environment variable must be set.

Usage Examples:
# Drafts a report from a bookkeeping export.
$ fst draft -company "Acme Trading Pty Ltd" -records trial_balance.txt

`
}

func (p *draftCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.company, "company", "", "Company name to use in the draft.")
	f.StringVar(&p.abn, "abn", "", "ABN to use in the draft.")
	f.StringVar(&p.records, "records", "", "File holding the raw source records. Reads stdin when empty.")
	f.BoolVar(&p.force, "force", false, "Overwrite the report file if it already exists.")
}

func (p *draftCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force {
		if _, err := os.Stat(*reportFile); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %q already exists, use -force to overwrite it.\n", *reportFile)
			return subcommands.ExitFailure
		}
	}

	records, err := p.readRecords()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error reading source records:", err)
		return subcommands.ExitFailure
	}
	if len(bytes.TrimSpace(records)) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no source records to draft from.")
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	drafter := generate.NewDrafter(client)
	report, err := drafter.Draft(ctx, generate.Brief{
		CompanyName: p.company,
		ABN:         p.abn,
		Records:     string(records),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Draft failed:", err)
		return subcommands.ExitFailure
	}

	if err := EncodeReportFile(report); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing report file:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully drafted %s\n", *reportFile)
	return subcommands.ExitSuccess
}

func (p *draftCmd) readRecords() ([]byte, error) {
	if p.records != "" {
		return os.ReadFile(p.records)
	}
	return io.ReadAll(os.Stdin)
}
