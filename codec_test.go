package main

import (
	"testing"

	"github.com/Phlosioneer/polyomino-generator/board"
	"github.com/Phlosioneer/polyomino-generator/polyomino"
	"github.com/Phlosioneer/polyomino-generator/solver"
)

func sampleSummary(t *testing.T) *ResultSummary {
	t.Helper()
	cfg := Config{Width: 2, Height: 2, MaxPieceSize: 4, MaxTiny: -1, MaxTriples: -1}

	catalog := polyomino.Generate(cfg.MaxPieceSize)
	enum := solver.NewEnumerator(catalog, cfg.Width, cfg.Height, cfg.limits())
	reducer := solver.NewReducer(catalog)
	set := solver.NewSet()
	raw := 0
	enum.Enumerate(func(b *board.Board) {
		raw++
		set.Insert(reducer.CanonicalForm(b))
	})
	return summarize(cfg, raw, set, -1)
}

func TestShareCodeRoundTrip(t *testing.T) {
	summary := sampleSummary(t)

	code, err := EncodeShareCode(summary)
	if err != nil {
		t.Fatalf("EncodeShareCode failed: %v", err)
	}

	decoded, err := DecodeShareCode(code)
	if err != nil {
		t.Fatalf("DecodeShareCode failed: %v", err)
	}

	if decoded.Version != summaryVersion {
		t.Errorf("expected version %s, got %s", summaryVersion, decoded.Version)
	}
	if decoded.Width != 2 || decoded.Height != 2 {
		t.Errorf("expected 2x2 board, got %dx%d", decoded.Width, decoded.Height)
	}
	if decoded.Raw != 12 {
		t.Errorf("expected 12 raw tilings, got %d", decoded.Raw)
	}
	if decoded.Distinct != 5 {
		t.Errorf("expected 5 distinct tilings, got %d", decoded.Distinct)
	}
	if len(decoded.Solutions) != 5 {
		t.Fatalf("expected 5 embedded solutions, got %d", len(decoded.Solutions))
	}
	for i, sol := range decoded.Solutions {
		cells := 0
		for _, piece := range sol {
			cells += len(piece.Blocks)
		}
		if cells != 4 {
			t.Errorf("solution %d covers %d cells, want 4", i, cells)
		}
	}
}

func TestShareCodeSolutionLimit(t *testing.T) {
	cfg := Config{Width: 2, Height: 2, MaxPieceSize: 4, MaxTiny: -1, MaxTriples: -1}
	catalog := polyomino.Generate(cfg.MaxPieceSize)
	enum := solver.NewEnumerator(catalog, cfg.Width, cfg.Height, cfg.limits())
	reducer := solver.NewReducer(catalog)
	set := solver.NewSet()
	enum.Enumerate(func(b *board.Board) {
		set.Insert(reducer.CanonicalForm(b))
	})

	summary := summarize(cfg, 12, set, 2)
	if len(summary.Solutions) != 2 {
		t.Errorf("expected 2 embedded solutions, got %d", len(summary.Solutions))
	}
	if summary.Distinct != 5 {
		t.Errorf("the distinct count must not be truncated with the solutions")
	}
}

func TestDecodeShareCode_Empty(t *testing.T) {
	if _, err := DecodeShareCode(""); err == nil {
		t.Errorf("expected error for empty share code")
	}
}

func TestDecodeShareCode_Invalid(t *testing.T) {
	if _, err := DecodeShareCode("not-a-share-code!"); err == nil {
		t.Errorf("expected error for invalid Base64")
	}
	// Valid Base64 but not gzip.
	if _, err := DecodeShareCode("aGVsbG8gd29ybGQ"); err == nil {
		t.Errorf("expected error for non-gzip payload")
	}
}
