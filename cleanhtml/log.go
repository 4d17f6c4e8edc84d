package cleanhtml

import (
	"os"

	"github.com/rs/zerolog"
)

// log is the package-level logger for advisory warnings (malformed URLs
// skipped during link absolutization, unexpected text discarded by the
// pretty formatter). Logging here is advisory only: nothing in this
// package returns an error because of a logged condition, and Clean is
// total for any input.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	With().Timestamp().Str("component", "cleanhtml").Logger()
