package launcher

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns the launcher's logger. The shim must be transparent
// to its caller, so logging is fully disabled unless debug mode is on;
// debug output goes to stderr where it cannot corrupt the child's
// stdout stream.
func newLogger(debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Str("component", "launcher").Logger()
}
