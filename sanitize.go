package finstmt

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitization runs every user-entered string through the same pipeline
// before it may reach the report model: strip all markup, decode entities,
// then erase the dangerous leftovers. The pipeline is repeated until the
// text stops changing, so decoding an entity can never resurrect a tag in
// the final output.

// maxSanitizeRounds bounds the fixpoint loop; real input stabilizes in two.
const maxSanitizeRounds = 8

var (
	stripPolicy  = bluemonday.StrictPolicy()
	inlinePolicy = newInlinePolicy()

	jsScheme     = regexp.MustCompile(`(?i)javascript\s*:`)
	eventHandler = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	scriptSpan   = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
)

// newInlinePolicy tolerates the basic inline formatting tags mid-pipeline.
// Anything it lets through is still removed by the next strict pass, so the
// allow-list only bounds what a single pass may keep.
func newInlinePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "strong", "i", "em")
	return p
}

// SanitizeText strips markup from free text. Tags are removed and script and
// style element content is dropped entirely, entities are decoded, and
// javascript: schemes and inline event-handler attributes are erased.
// Applying SanitizeText to its own output returns it unchanged. It never
// fails; empty input yields an empty string.
func SanitizeText(s string) string {
	for i := 0; i < maxSanitizeRounds; i++ {
		next := sanitizeOnce(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func sanitizeOnce(s string) string {
	s = stripPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	s = inlinePolicy.Sanitize(s)
	s = html.UnescapeString(s)
	s = jsScheme.ReplaceAllString(s, "")
	s = eventHandler.ReplaceAllString(s, "")
	s = scriptSpan.ReplaceAllString(s, "")
	return s
}

var nonNumericChars = regexp.MustCompile(`[^0-9,.()\-\s]`)

// FilterNumericText drops every character that cannot appear in a monetary
// amount, keeping digits, comma, period, parentheses, minus and whitespace.
func FilterNumericText(s string) string {
	return nonNumericChars.ReplaceAllString(s, "")
}

// Acceptable reports whether text is non-empty and at most max runes long.
// Rejected text never reaches the report model.
func Acceptable(s string, max int) bool {
	if max <= 0 {
		return false
	}
	n := utf8.RuneCountInString(s)
	return n >= 1 && n <= max
}

// deformat strips currency decoration from display text so an editor starts
// from the bare number: the symbol and group separators are removed and a
// parenthesized amount becomes a leading minus.
func deformat(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) > 2 {
		s = "-" + s[1:len(s)-1]
	}
	return strings.TrimSpace(s)
}
