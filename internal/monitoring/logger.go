// Package monitoring holds the process-wide diagnostic logger.
package monitoring

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level diagnostic logger. It defaults to a console
// writer on stderr but may be replaced by SetLogger. Tests or production
// code can redirect or mute it.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// SetLogger replaces the package logger.
func SetLogger(l zerolog.Logger) {
	Log = l
}

// SetOutput redirects the package logger to w. Passing io.Discard mutes it.
func SetOutput(w io.Writer) {
	Log = Log.Output(w)
}
