// Package cmd implements the CLI application to manage a financial report.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/finstmt/finstmt"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&newCmd{}, "report")
	c.Register(&showCmd{}, "report")
	c.Register(&previewCmd{}, "report")
	c.Register(&fmtCmd{}, "report")
	c.Register(&editCmd{}, "report")

	c.Register(&draftCmd{}, "assistant")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var reportFile = flag.String("report-file", defaultReportFile(), "Path to the report file (JSON format)")

// defaultReportFile resolves the report path when the flag is not given:
// the FST_REPORT environment variable, then report.json.
func defaultReportFile() string {
	if f := os.Getenv("FST_REPORT"); f != "" {
		return f
	}
	return "report.json"
}

// DecodeReportFile loads the report the app works on.
func DecodeReportFile() (*finstmt.ReportData, error) {
	r, err := finstmt.ReadReportFile(*reportFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("report file %q does not exist, run 'fst new' or 'fst draft' to create one", *reportFile)
	}
	return r, err
}

// EncodeReportFile writes the report back to the app report path.
func EncodeReportFile(r *finstmt.ReportData) error {
	return finstmt.WriteReportFile(*reportFile, r)
}

// loadComposer loads the report and dresses it with the user's
// configuration: field length limits and the preferred amount style. A
// non-empty styleFlag overrides the configured style.
func loadComposer(styleFlag string) (*finstmt.Composer, error) {
	r, err := DecodeReportFile()
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	c := finstmt.NewComposer(r)
	c.SetLimits(cfg.Limits)

	name := cfg.Style
	if styleFlag != "" {
		name = styleFlag
	}
	if name != "" {
		st, err := finstmt.ParseAmountStyle(name)
		if err != nil {
			return nil, err
		}
		c.SetStyle(st)
	}
	return c, nil
}
