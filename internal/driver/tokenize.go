package driver

import (
	"context"

	"uscl/internal/diag"
	"uscl/internal/lexer"
	"uscl/internal/observ"
	"uscl/internal/source"
	"uscl/internal/token"
	"uscl/internal/trace"
)

// TokenizeResult bundles everything one tokenization run produced.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Timing  observ.Report
}

// Tokenize loads one file from disk and scans it. The tracer travels in ctx.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	tracer := trace.FromContext(ctx)
	timer := observ.NewTimer()

	loadPhase := timer.Begin("load")
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	timer.End(loadPhase, path)

	bag := diag.NewBag(maxDiagnostics)

	scanPhase := timer.Begin("scan")
	trace.Phasef(tracer, "tokenize", path)
	tokens := lexer.Tokenize(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
		Tracer:   tracer,
		Interner: source.NewInterner(),
	})
	timer.End(scanPhase, "")

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Timing:  timer.Report(),
	}, nil
}

// TokenizeCached is Tokenize with a disk cache in front of the scanner.
// Cache hits skip scanning entirely; only clean scans (no diagnostics) are
// written back, so a hit never hides a warning. A nil cache degrades to
// plain Tokenize.
func TokenizeCached(ctx context.Context, path string, maxDiagnostics int, cache *TokenCache) (*TokenizeResult, error) {
	if cache == nil {
		return Tokenize(ctx, path, maxDiagnostics)
	}

	tracer := trace.FromContext(ctx)
	timer := observ.NewTimer()

	loadPhase := timer.Begin("load")
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	timer.End(loadPhase, path)

	bag := diag.NewBag(maxDiagnostics)

	if tokens, ok := cache.Get(file.Hash); ok {
		trace.Phasef(tracer, "cache.hit", path)
		return &TokenizeResult{
			FileSet: fs,
			File:    file,
			Tokens:  tokens,
			Bag:     bag,
			Timing:  timer.Report(),
		}, nil
	}

	scanPhase := timer.Begin("scan")
	trace.Phasef(tracer, "tokenize", path)
	tokens := lexer.Tokenize(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
		Tracer:   tracer,
		Interner: source.NewInterner(),
	})
	timer.End(scanPhase, "")

	if bag.Len() == 0 {
		if err := cache.Put(file.Hash, tokens); err != nil {
			trace.Phasef(tracer, "cache.put.error", err.Error())
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Timing:  timer.Report(),
	}, nil
}
