package diagfmt

// PrettyOpts controls the human-readable diagnostics renderer.
type PrettyOpts struct {
	// Color enables ANSI colors for severities and carets.
	Color bool
	// MaxWidth truncates source context lines; 0 means no truncation.
	MaxWidth int
}
