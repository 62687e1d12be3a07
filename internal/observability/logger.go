// internal/observability/logger.go
package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the console logger used by the binaries. debug lowers the
// level from info to debug.
func NewLogger(component string, debug bool) zerolog.Logger {
	return newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}, component, debug)
}

func newLogger(out io.Writer, component string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Str("component", component).Logger()
}
