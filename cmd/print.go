package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown renders markdown to stdout, styled for the terminal. Piped
// output gets the plain markdown source so it stays machine-readable.
func printMarkdown(src string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(src)
		return
	}
	out, err := glamour.Render(src, "auto")
	if err != nil {
		fmt.Println(src)
		return
	}
	fmt.Print(out)
}
