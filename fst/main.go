package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/finstmt/finstmt/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests and exits when one is in
// progress, before any flag parsing happens.
func completion() {
	styles := predict.Set{"statement", "compliance"}
	fst := &complete.Command{
		Flags: map[string]complete.Predictor{
			"report-file": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"new": {Flags: map[string]complete.Predictor{
				"force": predict.Nothing,
			}},
			"show": {Flags: map[string]complete.Predictor{
				"json":  predict.Nothing,
				"raw":   predict.Nothing,
				"style": styles,
			}},
			"preview": {Flags: map[string]complete.Predictor{
				"raw": predict.Nothing,
			}},
			"fmt": {},
			"edit": {Flags: map[string]complete.Predictor{
				"style": styles,
			}},
			"draft": {Flags: map[string]complete.Predictor{
				"company": predict.Nothing,
				"abn":     predict.Nothing,
				"records": predict.Files("*"),
				"force":   predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "editing", "notes-syntax", "report-format", "*"}},
		},
	}
	fst.Complete("fst")
}
