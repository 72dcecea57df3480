package driver

import (
	"context"
	"testing"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskCache: %v", err)
	}

	res := TokenizeSource("page.regg", []byte("<p>{x}</p>"), 16)
	if err := cache.Store(res.File, res.Tokens, res.Bag.Items()); err != nil {
		t.Fatalf("Store: %v", err)
	}

	newID := res.File.ID + 7
	tokens, diags, hit, err := cache.Load(res.File.Hash, newID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if len(tokens) != len(res.Tokens) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(res.Tokens))
	}
	for i := range tokens {
		if tokens[i].Kind != res.Tokens[i].Kind || tokens[i].Literal != res.Tokens[i].Literal {
			t.Errorf("token %d: got %v, want %v", i, tokens[i], res.Tokens[i])
		}
		if tokens[i].Span.File != newID {
			t.Errorf("token %d: span not re-homed, got file %d", i, tokens[i].Span.File)
		}
	}
	if len(diags) != 0 {
		t.Fatalf("got %d diagnostics, want 0", len(diags))
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskCache: %v", err)
	}

	var hash [32]byte
	hash[0] = 0xab
	_, _, hit, err := cache.Load(hash, 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if hit {
		t.Fatal("expected a miss for an unknown hash")
	}
}

func TestTokenizeDirUsesCache(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.regg": "<p>x</p>"})
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskCache: %v", err)
	}
	opts := DirOptions{MaxDiagnostics: 16, Cache: cache}

	first, err := TokenizeDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("first TokenizeDir: %v", err)
	}
	if first.Files[0].FromCache {
		t.Fatal("first scan should not hit the cache")
	}

	sink := &recordingSink{}
	opts.Sink = sink
	second, err := TokenizeDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("second TokenizeDir: %v", err)
	}
	if !second.Files[0].FromCache {
		t.Fatal("second scan should hit the cache")
	}
	if got := len(sink.byStatus(StatusCached)); got != 1 {
		t.Errorf("got %d cached events, want 1", got)
	}
	if len(second.Files[0].Tokens) != len(first.Files[0].Tokens) {
		t.Errorf("cached token count %d differs from fresh %d",
			len(second.Files[0].Tokens), len(first.Files[0].Tokens))
	}
}
