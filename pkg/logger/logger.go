package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog zerolog.Logger

// Init initializes the structured zerolog logger.
// Development environments get pretty console output, everything else JSON.
func Init(env string) {
	var w io.Writer

	if env == "development" || env == "dev" || env == "local" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		w = os.Stdout
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "mag-backend").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}
