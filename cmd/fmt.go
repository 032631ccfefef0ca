package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the report file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fst fmt

  Validates and formats the report file. This command reads the report,
  rounds every amount to cents, and writes it back with a fixed key order
  and indentation. Formatting an already canonical file changes nothing.

Usage Examples:
# Rewrites the default report file in place.
$ fst fmt

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := DecodeReportFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load report: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeReportFile(r); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted report: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %s\n", *reportFile)
	return subcommands.ExitSuccess
}
