package testlog

import (
	"testing"

	"github.com/rs/zerolog"

	"fasta/internal/logging"
)

// New returns a logger that writes through t.Log at the test profile level.
func New(t *testing.T) zerolog.Logger {
	t.Helper()
	cfg := logging.DefaultConfig(logging.ProfileTest)
	return zerolog.New(zerolog.NewTestWriter(t)).Level(cfg.Level).With().Str("test", t.Name()).Logger()
}
