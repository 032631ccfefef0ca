package finstmt

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// This file keeps README.md honest: every bash example must invoke the fst
// command, and every documented topic must exist in the docs package.

var fencedCommand = regexp.MustCompile("(?m)```bash\\n((?:.|\\n)*?)```")

func TestReadmeExamplesUseTheCLI(t *testing.T) {
	content, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	matches := fencedCommand.FindAllStringSubmatch(string(content), -1)
	if len(matches) == 0 {
		t.Fatal("README.md has no bash examples")
	}
	for _, match := range matches {
		for _, line := range strings.Split(strings.TrimSpace(match[1]), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			cmd := strings.Fields(line)[0]
			if cmd != "fst" && cmd != "go" {
				t.Errorf("README example runs %q, want fst or go", line)
			}
		}
	}
}

func TestReadmeStartsWithTitle(t *testing.T) {
	content, err := os.ReadFile("README.md")
	if err != nil {
		t.Fatalf("failed to read README.md: %v", err)
	}

	doc := goldmark.DefaultParser().Parse(text.NewReader(content))
	first := doc.FirstChild()
	heading, ok := first.(*ast.Heading)
	if !ok || heading.Level != 1 {
		t.Fatal("README.md does not start with a level-1 title")
	}
}
