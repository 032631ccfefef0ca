// Package generate drafts a first report from raw source records using
// Gemini. A draft is untrusted input: it goes through the same shape check
// and sanitization as any other generated payload before it reaches the
// editor.
package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/finstmt/finstmt"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemPrompt = `
You draft annual financial reports for small Australian companies.

From the source records you receive, produce the full report for the 2025
financial year with 2024 comparatives. Classify every line into revenue,
expenses, assets, liabilities or equity, and compute the net profit line
as total revenue less total expenses.

Amounts are plain numbers in whole dollars, negative amounts for losses.

Write the notes to the financial statements in a small markdown subset:
 - a fully bold line "**Note 1: Title**" starts a numbered note,
 - any other fully bold line is a section heading,
 - tables use pipe syntax with a |---|---| separator line under the header,
 - anything else is a plain paragraph.
Number the notes from 1 and reference them from line items through noteRef.
`

// Brief is the source material a draft is produced from.
type Brief struct {
	// CompanyName is used verbatim when set.
	CompanyName string
	// ABN is the Australian Business Number, when known.
	ABN string
	// Records is the raw bookkeeping material: a trial balance, a list of
	// transactions, or last year's report pasted as text.
	Records string
}

// Drafter produces report drafts through the Gemini API.
type Drafter struct {
	client *genai.Client
	config *genai.GenerateContentConfig
}

// NewDrafter wraps an initialized Gemini client.
func NewDrafter(client *genai.Client) *Drafter {
	return &Drafter{
		client: client,
		config: &genai.GenerateContentConfig{
			ResponseMIMEType:  "application/json",
			ResponseSchema:    reportSchema,
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
		},
	}
}

// Draft asks the model for a complete report built from the brief. The reply
// is validated and sanitized before it is returned, so a successful draft is
// safe to hand to the editor.
func (d *Drafter) Draft(ctx context.Context, b Brief) (*finstmt.ReportData, error) {
	resp, err := d.client.Models.GenerateContent(ctx, model, genai.Text(buildPrompt(b)), d.config)
	if err != nil {
		return nil, fmt.Errorf("could not generate a draft: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from model %s", model)
	}
	return decodeDraft(resp.Candidates[0].Content.Parts[0].Text)
}

func decodeDraft(raw string) (*finstmt.ReportData, error) {
	r, err := finstmt.DecodeGenerated([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("model returned an unusable draft: %w", err)
	}
	return r, nil
}

func buildPrompt(b Brief) string {
	var sb strings.Builder
	if b.CompanyName != "" {
		fmt.Fprintf(&sb, "Company name: %s\n", b.CompanyName)
	}
	if b.ABN != "" {
		fmt.Fprintf(&sb, "ABN: %s\n", b.ABN)
	}
	sb.WriteString("\nSource records:\n\n")
	sb.WriteString(b.Records)
	return sb.String()
}
