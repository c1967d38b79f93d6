package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// initLogger routes the global logger through a console writer on stderr so
// stdout stays clean for the count output.
func initLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}).Level(lvl).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using info")
	}
}
