package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finstmt/finstmt"
	"github.com/google/subcommands"
)

type newCmd struct {
	force bool
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create a starter report file" }
func (*newCmd) Usage() string {
	return `fst new [-force]

  Creates a starter report with one placeholder row per section and a notes
  skeleton, ready to be filled in with 'fst edit'.

Usage Examples:
# Writes a starter report to the default report file.
$ fst new

`
}

func (p *newCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "force", false, "Overwrite the report file if it already exists.")
}

func (p *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.force {
		if _, err := os.Stat(*reportFile); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %q already exists, use -force to overwrite it.\n", *reportFile)
			return subcommands.ExitFailure
		}
	}
	if err := EncodeReportFile(finstmt.NewReport()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully created %s\n", *reportFile)
	return subcommands.ExitSuccess
}
