package diagfmt

import (
	"fmt"
	"io"

	"regg/internal/diag"
)

// Classic renders diagnostics in the historical driver format:
//
//	[line {line}] Error{placeholder}: {message}
//
// The placeholder is empty for plain reports; it exists so future callers can
// locate the error ("at 'x'") without changing the shape.
func Classic(w io.Writer, bag *diag.Bag) {
	for _, d := range bag.Items() {
		ClassicReport(w, d.Line, "", d.Message)
	}
}

// ClassicReport writes a single classic-format line.
func ClassicReport(w io.Writer, line uint32, place, message string) {
	fmt.Fprintf(w, "[line %d] Error%s: %s\n", line, place, message)
}
