package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New construye el logger del proceso. En modo "release" emite JSON,
// en desarrollo una salida legible por consola.
func New(mode string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if mode == "release" {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	return zerolog.New(out).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
