package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/stocklens-dev/stocklens/internal/commands"
)

func main() {
	initLogger()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// initLogger sets up the global zerolog logger. Human-readable console
// output on stderr; STOCKLENS_DEBUG=1 enables request-level logging.
func initLogger() {
	level := zerolog.InfoLevel
	if os.Getenv("STOCKLENS_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}
