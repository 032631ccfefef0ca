package finstmt

import (
	"regexp"
	"strings"
	"testing"
)

func TestSanitizeText(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text passes through",
			input: "Revenue from ordinary activities",
			want:  "Revenue from ordinary activities",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "script element content is dropped",
			input: "<script>alert(1)</script>hello",
			want:  "hello",
		},
		{
			name:  "style element content is dropped",
			input: "<style>p{color:red}</style>text",
			want:  "text",
		},
		{
			name:  "inline tags are stripped but their text kept",
			input: "profit <b>before</b> tax",
			want:  "profit before tax",
		},
		{
			name:  "bold markers are not markup",
			input: "**Note 1: Basis**",
			want:  "**Note 1: Basis**",
		},
		{
			name:  "ampersand survives",
			input: "Wages & salaries",
			want:  "Wages & salaries",
		},
		{
			name:  "comparison survives",
			input: "5 < 6 and 7 > 6",
			want:  "5 < 6 and 7 > 6",
		},
		{
			name:  "javascript scheme is erased",
			input: "see javascript:alert(1) here",
			want:  "see alert(1) here",
		},
		{
			name:  "event handler attribute is erased",
			input: `x onclick=steal() y`,
			want:  "x steal() y",
		},
		{
			name:  "image with handler",
			input: `<img src=x onerror=alert(1)>cash`,
			want:  "cash",
		},
		{
			name:  "entity-encoded script is still dropped",
			input: "&lt;script&gt;alert(1)&lt;/script&gt;safe",
			want:  "safe",
		},
		{
			name:  "double-encoded tag is still stripped",
			input: "&amp;lt;b&amp;gt;x&amp;lt;/b&amp;gt;",
			want:  "x",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizeText(tc.input)
			if got != tc.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// hostile inputs for the idempotence and no-markup checks below.
var hostileInputs = []string{
	"",
	"plain text",
	"<script>alert(1)</script>hello",
	"<scr<script>ipt>alert(1)</script>",
	"javajavascript:script:alert(1)",
	"onclick = onclick=x",
	"&lt;script&gt;alert(1)&lt;/script&gt;",
	"&amp;amp;lt;script&amp;amp;gt;",
	"<b>bold</b> & <i>italic</i>",
	"a < b > c & d",
	`<a href="javascript:alert(1)">link</a>`,
	"| 1,234 | (567) |",
}

func TestSanitizeText_Idempotent(t *testing.T) {
	for _, input := range hostileInputs {
		once := SanitizeText(input)
		twice := SanitizeText(once)
		if once != twice {
			t.Errorf("SanitizeText is not idempotent on %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestSanitizeText_NoMarkupRemains(t *testing.T) {
	tag := regexp.MustCompile(`(?i)<[a-z]`)
	handler := regexp.MustCompile(`(?i)\bon\w+\s*=`)
	for _, input := range hostileInputs {
		got := SanitizeText(input)
		if tag.MatchString(got) {
			t.Errorf("SanitizeText(%q) = %q still contains a tag", input, got)
		}
		if strings.Contains(strings.ToLower(got), "javascript:") {
			t.Errorf("SanitizeText(%q) = %q still contains a javascript: scheme", input, got)
		}
		if handler.MatchString(got) {
			t.Errorf("SanitizeText(%q) = %q still contains an event handler", input, got)
		}
	}
}

func TestFilterNumericText(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"$12,346.00", "12,346.00"},
		{"(1,234)", "(1,234)"},
		{"abc-12 .5x", "-12 .5"},
		{"\t1 2\n", "\t1 2\n"},
		{"twelve", ""},
		{"１２３", ""}, // fullwidth digits are not digits
		{"", ""},
	}

	allowed := regexp.MustCompile(`^[0-9,.()\-\s]*$`)
	for _, tc := range testCases {
		got := FilterNumericText(tc.input)
		if got != tc.want {
			t.Errorf("FilterNumericText(%q) = %q, want %q", tc.input, got, tc.want)
		}
		if !allowed.MatchString(got) {
			t.Errorf("FilterNumericText(%q) = %q contains a disallowed character", tc.input, got)
		}
	}
}

func TestAcceptable(t *testing.T) {
	testCases := []struct {
		name string
		s    string
		max  int
		want bool
	}{
		{"empty is rejected", "", 10, false},
		{"single char", "a", 10, true},
		{"at limit", "abcde", 5, true},
		{"over limit", "abcdef", 5, false},
		{"runes not bytes", "héllo", 5, true},
		{"zero limit rejects everything", "a", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Acceptable(tc.s, tc.max); got != tc.want {
				t.Errorf("Acceptable(%q, %d) = %v, want %v", tc.s, tc.max, got, tc.want)
			}
		})
	}
}

func TestDeformat(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"$12,346", "12346"},
		{"-$12,346", "-12346"},
		{"(12,346)", "-12346"},
		{"12346", "12346"},
		{" $1,000 ", "1000"},
		{"()", "()"},
	}

	for _, tc := range testCases {
		if got := deformat(tc.input); got != tc.want {
			t.Errorf("deformat(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
