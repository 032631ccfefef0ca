// Package tui is the full-screen report editor. It hosts a Composer: every
// keystroke in an edit runs through the composer's pipeline, so the model on
// screen is always the committed report plus the pending raw text of the
// field being edited.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/finstmt/finstmt"
)

// Run opens the editor over c and blocks until the user quits. Saving
// writes the committed report back to path.
func Run(path string, c *finstmt.Composer) error {
	m := newAppModel(path, c)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
