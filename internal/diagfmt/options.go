package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Context is the number of neighboring source lines shown around the
	// reported one. 0 shows just the line itself.
	Context int8
}
