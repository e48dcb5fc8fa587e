//go:build testing

package log

import (
	"io"

	"github.com/rs/zerolog"
)

func newLogger() zerolog.Logger {
	return zerolog.New(io.Discard).With().Stack().Logger()
}
