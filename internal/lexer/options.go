package lexer

import (
	"regg/internal/diag"
	"regg/internal/source"
)

// Options configure a Lexer instance.
type Options struct {
	// Reporter receives every lexical diagnostic. It is owned by the caller
	// for the whole scan, so accumulated error state survives to the end of
	// token production. May be nil: diagnostics are dropped but scanning
	// still continues.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, lx.line, msg)
	}
}
