package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/Phlosioneer/polyomino-generator/board"
	"github.com/Phlosioneer/polyomino-generator/polyomino"
)

// Config is the startup configuration of a run. Values are fixed before the
// search starts and never change afterwards.
type Config struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	MaxPieceSize int `json:"maxPieceSize"`
	// MaxTiny caps pieces of size 1 or 2; MaxTriples caps size-3 pieces.
	// Negative values disable the cap.
	MaxTiny    int `json:"maxTiny"`
	MaxTriples int `json:"maxTriples"`
}

// defaultConfig is the reference setup: a 6x6 board, the full size-4
// catalog, one tiny piece and two triples.
func defaultConfig() Config {
	return Config{
		Width:        6,
		Height:       6,
		MaxPieceSize: 4,
		MaxTiny:      1,
		MaxTriples:   2,
	}
}

// loadConfig reads a JSON config file over the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := sonic.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info().
		Str("path", path).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("loaded config file")
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("board dimensions %dx%d are not positive", c.Width, c.Height)
	}
	if c.MaxPieceSize < 1 || c.MaxPieceSize > polyomino.MaxCells {
		return fmt.Errorf("max piece size %d outside [1, %d]", c.MaxPieceSize, polyomino.MaxCells)
	}
	return nil
}

// limits converts the configured budgets to search limits.
func (c Config) limits() board.Limits {
	return board.Limits{MaxTiny: c.MaxTiny, MaxTriples: c.MaxTriples}
}
