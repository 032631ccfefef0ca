package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finstmt/finstmt/tui"
	"github.com/google/subcommands"
)

type editCmd struct {
	style string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "open the report in the interactive editor" }
func (*editCmd) Usage() string {
	return `fst edit [-style <style>]

  Opens the report in a full-screen editor. Every field of the statements
  is editable in place; totals and the net positions follow each committed
  keystroke. The notes text has its own editor with a rendered preview.

`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.style, "style", "", "Amount style (statement, compliance). Overrides the configured style.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := loadComposer(p.style)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := tui.Run(*reportFile, c); err != nil {
		fmt.Fprintln(os.Stderr, "Editor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
