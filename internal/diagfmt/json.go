package diagfmt

import (
	"encoding/json"
	"io"

	"regg/internal/diag"
	"regg/internal/source"
)

// DiagnosticOutput is the serialisable view of a diagnostic.
type DiagnosticOutput struct {
	Path     string      `json:"path"`
	Line     uint32      `json:"line"`
	Col      uint32      `json:"col"`
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Message  string      `json:"message"`
	Span     source.Span `json:"span"`
}

// DiagnosticsJSON writes the bag as an indented JSON array, for tooling that
// consumes scan results programmatically.
func DiagnosticsJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	output := make([]DiagnosticOutput, 0, bag.Len())
	for _, d := range bag.Items() {
		startPos, _ := fs.Resolve(d.Primary)
		output = append(output, DiagnosticOutput{
			Path:     fs.Get(d.Primary.File).Path,
			Line:     d.Line,
			Col:      startPos.Col,
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Span:     d.Primary,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
