package main

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/Phlosioneer/polyomino-generator/solver"
)

// summaryVersion tags the share-code format.
const summaryVersion = "1"

// PieceDesc is one shape of a tiling, as origin-relative blocks.
type PieceDesc struct {
	Blocks [][2]int `json:"blocks"`
}

// ResultSummary is the exportable outcome of a run: the configuration, the
// distinct-tiling count, and up to a configured number of canonical
// solutions.
type ResultSummary struct {
	Version      string        `json:"version"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	MaxPieceSize int           `json:"maxPieceSize"`
	Raw          int           `json:"raw"`
	Distinct     int           `json:"distinct"`
	Solutions    [][]PieceDesc `json:"solutions,omitempty"`
}

// summarize packages a finished run. At most maxSolutions canonical
// solutions are included, in set order; a negative limit includes all.
func summarize(cfg Config, raw int, set *solver.Set, maxSolutions int) *ResultSummary {
	summary := &ResultSummary{
		Version:      summaryVersion,
		Width:        cfg.Width,
		Height:       cfg.Height,
		MaxPieceSize: cfg.MaxPieceSize,
		Raw:          raw,
		Distinct:     set.Len(),
	}

	for _, sol := range set.Solutions() {
		if maxSolutions >= 0 && len(summary.Solutions) >= maxSolutions {
			break
		}
		pieces := make([]PieceDesc, len(sol))
		for i, shape := range sol {
			blocks := make([][2]int, shape.Size())
			for j, c := range shape.Coords() {
				blocks[j] = [2]int{c.X, c.Y}
			}
			pieces[i] = PieceDesc{Blocks: blocks}
		}
		summary.Solutions = append(summary.Solutions, pieces)
	}
	return summary
}

// EncodeShareCode packs a summary into a URL-safe Base64 encoded, Gzip
// compressed JSON string.
func EncodeShareCode(summary *ResultSummary) (string, error) {
	jsonBytes, err := sonic.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	var buf bytes.Buffer
	gzWriter := gzip.NewWriter(&buf)
	if _, err := gzWriter.Write(jsonBytes); err != nil {
		return "", fmt.Errorf("failed to compress: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return "", fmt.Errorf("failed to finish compression: %w", err)
	}

	return base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(buf.Bytes()), nil
}

// DecodeShareCode unpacks a share code produced by EncodeShareCode.
func DecodeShareCode(code string) (*ResultSummary, error) {
	if code == "" {
		return nil, fmt.Errorf("share code is empty")
	}

	decodedBytes, err := base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("failed to decode Base64: %w", err)
	}

	gzReader, err := gzip.NewReader(bytes.NewReader(decodedBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	jsonBytes, err := io.ReadAll(gzReader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress gzip: %w", err)
	}

	var summary ResultSummary
	if err := sonic.Unmarshal(jsonBytes, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return &summary, nil
}
