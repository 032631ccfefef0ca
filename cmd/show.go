package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finstmt/finstmt"
	"github.com/finstmt/finstmt/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	json  bool
	raw   bool
	style string
}

func (*showCmd) Name() string { return "show" }
func (*showCmd) Synopsis() string {
	return "render the report with its derived totals as markdown"
}
func (*showCmd) Usage() string {
	return `fst show [-json | -raw] [-style <style>]

  Renders the full report: income statement, balance sheet with the derived
  totals and net positions, and the notes. Totals are always recomputed from
  the rows, never read from the file.

Usage Examples:
# Renders the default report file for the terminal.
$ fst show
# Prints the canonical report JSON.
$ fst show -json

`
}

func (p *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.json, "json", false, "Print the canonical report JSON instead of markdown.")
	f.BoolVar(&p.raw, "raw", false, "Print the markdown source without terminal styling.")
	f.StringVar(&p.style, "style", "", "Amount style (statement, compliance). Overrides the configured style.")
}

func (p *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.json {
		r, err := DecodeReportFile()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		if err := finstmt.EncodeReport(os.Stdout, r); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	c, err := loadComposer(p.style)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	out := renderer.ReportMarkdown(c.Snapshot())
	if p.raw {
		fmt.Println(out)
		return subcommands.ExitSuccess
	}
	printMarkdown(out)
	return subcommands.ExitSuccess
}
