// Package finstmt provides the data model and editing core for a small-entity
// financial report: an income statement, a balance sheet, and free-text notes
// written in a constrained markdown subset.
//
// The package keeps a canonical numeric model consistent with free-form,
// user-editable display text. Its pieces, leaf first:
//
//   - Sanitization: every piece of user input is cleaned before it can reach
//     the model (SanitizeText, FilterNumericText, Acceptable).
//   - Amounts: parsing and the two statement formatting conventions
//     (ParseAmount, AmountStyle).
//   - Model: ReportData and FinancialItem, with JSON round-trip and a shape
//     check for payloads arriving from the report generator.
//   - Reconciler: the per-field state machine bridging committed values and
//     in-progress raw edits (Session).
//   - Composer: assembles the visible report from the model, the edit
//     session, and the note anchors parsed by the notes subpackage, and
//     derives section totals.
//
// All core operations are total and synchronous: malformed input degrades
// (a failed number parse commits 0, a malformed table renders as paragraphs)
// rather than failing. Report generation, export, and storage are external
// collaborators; this package only consumes their ReportData payloads and a
// busy flag.
//
// This package serves as the foundational logic for the `fst` command-line
// tool.
package finstmt
