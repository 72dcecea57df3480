package driver

import (
	"regg/internal/diag"
	"regg/internal/lexer"
	"regg/internal/source"
	"regg/internal/token"
)

// TokenizeResult bundles everything a caller needs to render tokens and
// decide success: the token stream and the diagnostics accumulated during
// the scan. The Bag is the single collector threaded through the whole scan;
// inspecting it is how a caller learns the scan had problems.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// HadErrors reports whether the scan produced any error diagnostic.
func (r *TokenizeResult) HadErrors() bool {
	return r.Bag.HasErrors()
}

// Tokenize loads a file from disk and scans it front-to-back.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return scanFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource scans an in-memory buffer (REPL line, test input) under a
// virtual file name.
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return scanFile(fs, fileID, maxDiagnostics)
}

func scanFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	tokens := lx.ScanAll()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
