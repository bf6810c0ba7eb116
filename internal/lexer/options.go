package lexer

import (
	"uscl/internal/diag"
	"uscl/internal/source"
	"uscl/internal/trace"
)

// Options configures one tokenization run.
type Options struct {
	// Reporter receives the LexUnknownChar warnings. May be nil: unknown
	// characters are then skipped silently (but still skipped).
	Reporter diag.Reporter

	// Tracer receives the per-file debug counters. May be nil.
	Tracer trace.Tracer

	// Interner, when set, dedupes identifier and keyword lexemes so repeated
	// names share one allocation. May be nil.
	Interner *source.Interner
}

func (lx *Lexer) warn(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}

func (lx *Lexer) tracer() trace.Tracer {
	if lx.opts.Tracer != nil {
		return lx.opts.Tracer
	}
	return trace.Nop
}
