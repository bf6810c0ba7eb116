package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"uscl/internal/diag"
	"uscl/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
)

// Pretty renders diagnostics in a human-readable form, one block per
// diagnostic. Iterates bag.Items() (call bag.Sort() beforehand for stable
// output):
//
//	<path>:<line>:<col>: <SEV> <ID>: <message>
//	  <source line>
//	  <caret underline>
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
		for _, n := range d.Notes {
			writeDiagnostic(w, diag.New(diag.SevInfo, d.Code, n.Span, n.Msg), fs, opts)
		}
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		file.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	if opts.MaxWidth > 0 {
		line = runewidth.Truncate(line, opts.MaxWidth, "...")
	}
	fmt.Fprintf(w, "  %s\n", line)

	// Caret underline spans the byte columns on the start line.
	caretStart := int(start.Col) - 1
	caretLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		caretLen = int(end.Col - start.Col)
	}
	if caretStart > len(line) {
		caretStart = len(line)
	}
	underline := strings.Repeat(" ", caretStart) + "^" + strings.Repeat("~", caretLen-1)
	if opts.Color {
		underline = severityColor(d.Severity).Sprint(underline)
	}
	fmt.Fprintf(w, "  %s\n", underline)
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
