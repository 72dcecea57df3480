package diag

import (
	"regg/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single finding reported during a scan.
// Line is the scanner's own 1-based line counter at the moment of the report;
// it is recorded separately from Primary because the scanner's counter is the
// defined semantics for user-facing line numbers (see token.Token.Line).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Line     uint32
	Notes    []Note
}
