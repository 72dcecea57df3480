// Package diag defines the diagnostic model shared by the scanner and the
// driving layers.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     lexical findings.
//   - Offer light-weight utilities (Reporter, Bag) that let the scanner emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering lives in internal/diagfmt; success/failure policy (exit codes,
// REPL resets) lives with the caller that owns the Bag.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity: tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code: compact numeric identifier (see codes.go) with stable string form.
//   - Message: human oriented text; keep it short and actionable.
//   - Primary span: the canonical source.Span pointing at the issue.
//   - Line: the scanner's 1-based line counter at report time.
//
// The scanner never aborts on a diagnostic: every error kind is
// report-and-continue, and the caller decides what a non-empty Bag means.
package diag
