// Command polyomino-generator counts the tilings of a rectangular board by
// polyominoes of up to four cells, deduplicated across the board's
// symmetries.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Phlosioneer/polyomino-generator/board"
	"github.com/Phlosioneer/polyomino-generator/polyomino"
	"github.com/Phlosioneer/polyomino-generator/solver"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON config file; flags override its values")
		width      = flag.Int("width", 0, "board width (default from config)")
		height     = flag.Int("height", 0, "board height (default from config)")
		maxSize    = flag.Int("max-size", 0, "largest piece size to generate (default from config)")
		maxTiny    = flag.Int("max-tiny", 0, "budget for size-1/2 pieces, negative for unlimited")
		maxTriples = flag.Int("max-triples", 0, "budget for size-3 pieces, negative for unlimited")
		noDedup    = flag.Bool("no-dedup", false, "count every tiling instead of symmetry classes")
		sharePath  = flag.String("share", "", "write a share code of the result to this file")
		shareLimit = flag.Int("share-limit", 100, "max canonical solutions embedded in the share code, negative for all")
		renderPath = flag.String("render", "", "write the first canonical solution as a PNG to this path")
		renderCell = flag.Int("render-cell", 32, "rendered pixel size of one board cell")
		logLevel   = flag.String("level", "info", "log level (trace..error)")
	)
	flag.Parse()

	initLogger(*logLevel)

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("bad config file")
		}
		cfg = loaded
	}
	applyFlagOverrides(&cfg, width, height, maxSize, maxTiny, maxTriples)
	if err := cfg.validate(); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	log.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("maxPieceSize", cfg.MaxPieceSize).
		Int("maxTiny", cfg.MaxTiny).
		Int("maxTriples", cfg.MaxTriples).
		Bool("dedup", !*noDedup).
		Msg("starting enumeration")

	catalog := polyomino.Generate(cfg.MaxPieceSize)
	log.Info().Int("shapes", catalog.Len()).Msg("catalog ready")

	enum := solver.NewEnumerator(catalog, cfg.Width, cfg.Height, cfg.limits())

	if *noDedup {
		raw := 0
		enum.Enumerate(func(*board.Board) {
			raw++
			if shouldReport(raw) {
				fmt.Println(raw)
			}
		})
		log.Info().Int("tilings", raw).Msg("done")
		fmt.Println(raw)
		return
	}

	reducer := solver.NewReducer(catalog)
	set := solver.NewSet()
	raw := 0
	enum.Enumerate(func(b *board.Board) {
		raw++
		if set.Insert(reducer.CanonicalForm(b)) && shouldReport(set.Len()) {
			fmt.Println(set.Len())
		}
	})

	log.Info().Int("raw", raw).Int("distinct", set.Len()).Msg("done")
	fmt.Println(set.Len())

	if *sharePath != "" {
		writeShareCode(*sharePath, summarize(cfg, raw, set, *shareLimit))
	}
	if *renderPath != "" {
		renderFirstSolution(*renderPath, cfg, set, *renderCell)
	}
}

// applyFlagOverrides copies explicitly set flags over the config values.
func applyFlagOverrides(cfg *Config, width, height, maxSize, maxTiny, maxTriples *int) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "max-size":
			cfg.MaxPieceSize = *maxSize
		case "max-tiny":
			cfg.MaxTiny = *maxTiny
		case "max-triples":
			cfg.MaxTriples = *maxTriples
		}
	})
}

// shouldReport thins the progress stream to roughly one line per decade:
// every count below ten, every tenth below a hundred, and so on.
func shouldReport(n int) bool {
	step := 1
	for threshold := 10; n >= threshold && step < 100000; threshold *= 10 {
		step *= 10
	}
	return n%step == 0
}

func writeShareCode(path string, summary *ResultSummary) {
	code, err := EncodeShareCode(summary)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode share code")
		return
	}
	if err := os.WriteFile(path, []byte(code), 0o644); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to write share code")
		return
	}
	log.Info().Str("path", path).Int("solutions", len(summary.Solutions)).
		Msg("share code written")
}

func renderFirstSolution(path string, cfg Config, set *solver.Set, cellSize int) {
	if set.Len() == 0 {
		log.Warn().Msg("nothing to render: no tilings found")
		return
	}
	b, ok := board.FromSolution(cfg.Width, cfg.Height, set.Solutions()[0])
	if !ok {
		log.Error().Msg("canonical solution failed to rebuild for rendering")
		return
	}
	if err := writeBoardPNG(path, b, cellSize); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to render board")
		return
	}
	log.Info().Str("path", path).Msg("board rendered")
}
