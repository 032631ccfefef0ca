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

type previewCmd struct {
	raw bool
}

func (*previewCmd) Name() string { return "preview" }
func (*previewCmd) Synopsis() string {
	return "render the report in the compliance convention"
}
func (*previewCmd) Usage() string {
	return `fst preview [-raw]

  Renders the report the way the printed statements present it: amounts
  without a currency symbol, negatives in parentheses. Same content as
  'fst show', fixed to the compliance amount style.

Usage Examples:
# Renders the compliance preview for the terminal.
$ fst preview

`
}

func (p *previewCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.raw, "raw", false, "Print the markdown source without terminal styling.")
}

func (p *previewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := loadComposer(finstmt.StyleCompliance.String())
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
