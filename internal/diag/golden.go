package diag

import (
	"fmt"
	"sort"
	"strings"

	"regg/internal/source"
)

type renderedDiagnostic struct {
	Path    string
	Line    uint32
	Column  uint32
	Sev     string
	Code    string
	Message string
}

// FormatShortDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files and CLI short output. Entries are
// sorted deterministically; the result is empty when nothing was reported.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]renderedDiagnostic, 0, len(diags))
	for _, d := range diags {
		startPos, _ := fs.Resolve(d.Primary)
		rendered = append(rendered, renderedDiagnostic{
			Path:    fs.Get(d.Primary.File).Path,
			Line:    d.Line,
			Column:  startPos.Col,
			Sev:     d.Severity.String(),
			Code:    d.Code.ID(),
			Message: d.Message,
		})
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Sev != dj.Sev {
			return di.Sev < dj.Sev
		}
		return di.Code < dj.Code
	})

	var b strings.Builder
	for _, r := range rendered {
		fmt.Fprintf(&b, "%s:%d:%d: %s %s: %s\n", r.Path, r.Line, r.Column, r.Sev, r.Code, r.Message)
	}
	return b.String()
}
