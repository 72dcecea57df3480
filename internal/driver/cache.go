package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"regg/internal/diag"
	"regg/internal/source"
	"regg/internal/token"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// DiskCache stores per-file scan results keyed by content hash, so repeated
// directory scans skip files that did not change.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachePayload is the msgpack-encoded cache entry.
type cachePayload struct {
	Schema uint16
	Path   string
	Tokens []token.Token
	Diags  []diag.Diagnostic
}

// NewDiskCache creates the cache directory if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) entryPath(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".tok")
}

// Store writes the scan result for a file under its content hash.
func (c *DiskCache) Store(file *source.File, tokens []token.Token, diags []diag.Diagnostic) error {
	payload := cachePayload{
		Schema: cacheSchemaVersion,
		Path:   file.Path,
		Tokens: tokens,
		Diags:  diags,
	}

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.WriteFile(c.entryPath(file.Hash), data, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Load fetches a cached scan result by content hash. Spans inside the cached
// tokens and diagnostics are re-homed onto the given FileID, since IDs are
// per-FileSet. A schema mismatch reads as a miss.
func (c *DiskCache) Load(hash [32]byte, fileID source.FileID) ([]token.Token, []diag.Diagnostic, bool, error) {
	c.mu.RLock()
	data, err := os.ReadFile(c.entryPath(hash))
	c.mu.RUnlock()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, false, nil
		}
		return nil, nil, false, fmt.Errorf("read cache entry: %w", err)
	}

	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, nil, false, fmt.Errorf("decode cache entry: %w", err)
	}
	if payload.Schema != cacheSchemaVersion {
		return nil, nil, false, nil
	}

	for i := range payload.Tokens {
		payload.Tokens[i].Span.File = fileID
	}
	for i := range payload.Diags {
		payload.Diags[i].Primary.File = fileID
	}
	return payload.Tokens, payload.Diags, true, nil
}
