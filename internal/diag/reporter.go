package diag

import "regg/internal/source"

// Reporter is the minimal contract for receiving diagnostics from the scan.
// Implementations: BagReporter (stores into a Bag), NopReporter (drops).
// The caller owns the Reporter for the whole scan, so accumulated state
// survives to the end of token production; there is no throwaway per-report
// handle anywhere in the pipeline.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, line uint32, msg string)
}

// BagReporter forwards every report into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, line uint32, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Line:     line,
	})
}

// NopReporter discards every report.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, uint32, string) {}
