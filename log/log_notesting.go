//go:build !testing

package log

import (
	"os"

	"github.com/rs/zerolog"
)

func newLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"} //nolint:exhaustruct
	return zerolog.New(writer).With().Stack().Logger().Level(zerolog.InfoLevel)
}
