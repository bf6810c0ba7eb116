package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"uscl/internal/diag"
	"uscl/internal/lexer"
	"uscl/internal/source"
	"uscl/internal/token"
	"uscl/internal/trace"
)

// SourceExt is the USCL source file extension.
const SourceExt = ".ul"

// TokenizeDirResult holds the tokenization output for one file of a
// directory run.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// listULFiles returns the sorted list of all *.ul files under dir.
func listULFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order regardless of filesystem.
	sort.Strings(files)
	return files, nil
}

// TokenizeDir scans every *.ul file under dir in parallel. Files are loaded
// up front on one goroutine; scanning fans out over an errgroup bounded by
// jobs (GOMAXPROCS when jobs <= 0). Results land at fixed indexes, so no
// locking is needed.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	tracer := trace.FromContext(ctx)

	files, err := listULFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	trace.Phasef(tracer, "tokenize-dir", dir)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, loadErr.Error()))
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			tokens := lexer.Tokenize(fileSet.Get(fileID), lexer.Options{
				Reporter: diag.BagReporter{Bag: bag},
				Tracer:   tracer,
				Interner: source.NewInterner(),
			})
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
