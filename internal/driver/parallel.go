package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"regg/internal/diag"
	"regg/internal/lexer"
	"regg/internal/source"
	"regg/internal/token"
)

// DefaultExt is the file extension scanned by TokenizeDir when the caller
// does not override it.
const DefaultExt = ".regg"

// DirOptions controls a directory scan.
type DirOptions struct {
	// Ext selects which files to scan. Empty means DefaultExt.
	Ext string
	// Jobs bounds concurrent scans. Zero or negative means one worker per file.
	Jobs int
	// MaxDiagnostics caps the per-file diagnostic bag.
	MaxDiagnostics int
	// Cache, when set, serves unchanged files from disk and stores fresh scans.
	Cache *DiskCache
	// Sink, when set, receives per-file progress events.
	Sink ProgressSink
}

// DirFileResult holds a single file's scan outcome within a directory scan.
type DirFileResult struct {
	Path      string
	FileID    source.FileID
	Tokens    []token.Token
	Bag       *diag.Bag
	FromCache bool
}

// DirResult is the outcome of a directory scan. Files are ordered by path
// regardless of which worker finished first.
type DirResult struct {
	FileSet *source.FileSet
	Files   []DirFileResult
}

// HadErrors reports whether any file in the scan produced an error diagnostic.
func (r *DirResult) HadErrors() bool {
	for i := range r.Files {
		if r.Files[i].Bag.HasErrors() {
			return true
		}
	}
	return false
}

// TokenizeDir scans every matching file under dir. Files are loaded into a
// shared FileSet up front, then scanned concurrently; the result order is
// deterministic (sorted by path).
func TokenizeDir(ctx context.Context, dir string, opts DirOptions) (*DirResult, error) {
	ext := opts.Ext
	if ext == "" {
		ext = DefaultExt
	}

	paths, err := ListFiles(dir, ext)
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSet()
	results := make([]DirFileResult, len(paths))

	// Loading mutates the FileSet, so it stays on this goroutine. Scanning is
	// pure per-file work and runs in parallel below.
	for i, path := range paths {
		emit(opts.Sink, Event{File: path, Status: StatusQueued})
		fileID, loadErr := fileSet.Load(path)
		if loadErr != nil {
			// The placeholder keeps the diagnostic's span resolvable.
			placeholder := fileSet.AddVirtual(path, nil)
			bag := diag.NewBag(opts.MaxDiagnostics)
			bag.Add(diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IOReadFailed,
				Message:  fmt.Sprintf("cannot read %s: %v", path, loadErr),
				Primary:  source.Span{File: placeholder},
				Line:     1,
			})
			results[i] = DirFileResult{Path: path, FileID: placeholder, Bag: bag}
			emit(opts.Sink, Event{File: path, Status: StatusError, Err: loadErr})
			continue
		}
		results[i] = DirFileResult{Path: path, FileID: fileID}
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}

	for i := range results {
		if results[i].Bag != nil {
			continue // load already failed
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scanDirFile(fileSet, &results[i], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DirResult{FileSet: fileSet, Files: results}, nil
}

func scanDirFile(fileSet *source.FileSet, res *DirFileResult, opts DirOptions) {
	file := fileSet.Get(res.FileID)

	if opts.Cache != nil {
		tokens, diags, hit, err := opts.Cache.Load(file.Hash, res.FileID)
		if err == nil && hit {
			bag := diag.NewBag(opts.MaxDiagnostics)
			for _, d := range diags {
				bag.Add(d)
			}
			res.Tokens = tokens
			res.Bag = bag
			res.FromCache = true
			emit(opts.Sink, Event{File: res.Path, Status: StatusCached})
			return
		}
	}

	emit(opts.Sink, Event{File: res.Path, Status: StatusScanning})

	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	res.Tokens = lx.ScanAll()
	res.Bag = bag

	if opts.Cache != nil {
		if err := opts.Cache.Store(file, res.Tokens, bag.Items()); err != nil {
			bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.IOCacheFailed,
				Message:  fmt.Sprintf("cannot cache %s: %v", res.Path, err),
				Primary:  source.Span{File: res.FileID},
				Line:     1,
			})
		}
	}

	if bag.HasErrors() {
		emit(opts.Sink, Event{File: res.Path, Status: StatusError})
	} else {
		emit(opts.Sink, Event{File: res.Path, Status: StatusDone})
	}
}

// ListFiles returns all files under dir with the given extension, sorted by
// path. TokenizeDir scans exactly this set, in this order.
func ListFiles(dir, ext string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ext {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}
