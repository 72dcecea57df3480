package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"regg/internal/diag"
	"regg/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
	gutters   = color.New(color.FgBlue)
)

// Pretty renders diagnostics in a human-readable form. It walks bag.Items()
// (run bag.Sort() beforehand for a deterministic order) and prints, per
// diagnostic:
//
//	<path>:<line>:<col>: <SEVERITY> <CODE>: <message>
//
// followed by the source line with a caret underline covering the primary
// span. Color is applied only when opts.Color is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	startPos, endPos := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = severityColor(d.Severity).Sprint(code)
	}

	pos := fmt.Sprintf("%s:%d:%d", file.Path, d.Line, startPos.Col)
	if opts.Color {
		pos = posColor.Sprint(pos)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n", pos, sev, code, d.Message)

	line := file.GetLine(startPos.Line)
	if line == "" && startPos.Line != 1 {
		return
	}

	for ctx := int8(0); ctx < opts.Context; ctx++ {
		n := startPos.Line - uint32(opts.Context) + uint32(ctx)
		if n >= 1 && n < startPos.Line {
			writeGutterLine(w, n, fs.Get(d.Primary.File).GetLine(n), opts)
		}
	}

	writeGutterLine(w, startPos.Line, line, opts)
	writeUnderline(w, line, startPos, endPos, opts)
}

func writeGutterLine(w io.Writer, n uint32, text string, opts PrettyOpts) {
	gutter := fmt.Sprintf("%4d | ", n)
	if opts.Color {
		gutter = gutters.Sprint(gutter)
	}
	fmt.Fprintf(w, "%s%s\n", gutter, text)
}

// writeUnderline prints the ^~~~ marker under the span. Columns are counted
// in display cells so wide runes line up.
func writeUnderline(w io.Writer, line string, startPos, endPos source.LineCol, opts PrettyOpts) {
	runes := []rune(line)

	// Display width of everything before the caret.
	prefixEnd := int(startPos.Col) - 1
	if prefixEnd > len(runes) {
		prefixEnd = len(runes)
	}
	pad := runewidth.StringWidth(string(runes[:prefixEnd]))

	span := 1
	if endPos.Line == startPos.Line && endPos.Col > startPos.Col {
		markEnd := int(endPos.Col) - 1
		if markEnd > len(runes) {
			markEnd = len(runes)
		}
		if markEnd > prefixEnd {
			span = runewidth.StringWidth(string(runes[prefixEnd:markEnd]))
		}
	}

	marker := "^" + strings.Repeat("~", max(span-1, 0))
	if opts.Color {
		marker = errColor.Sprint(marker)
	}

	gutter := "     | "
	if opts.Color {
		gutter = gutters.Sprint(gutter)
	}
	fmt.Fprintf(w, "%s%s%s\n", gutter, strings.Repeat(" ", pad), marker)
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
