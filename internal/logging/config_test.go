package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
		ok   bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{" WARNING ", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"", zerolog.InfoLevel, false},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = %v,%v want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:     "error",
		EnvLogTimestamp: "false",
		EnvLogNoColor:   "nope",
	}
	cfg := DefaultConfig(ProfileRuntime)
	applyEnv(&cfg, func(k string) string { return env[k] })
	if cfg.Level != zerolog.ErrorLevel || cfg.Timestamp || cfg.NoColor {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestNewWritesPlainText(t *testing.T) {
	var buf bytes.Buffer
	log := New("fasta", Config{Level: zerolog.InfoLevel}, &buf)
	log.Debug().Msg("hidden")
	log.Info().Str("source", "x.fa").Msg("validated")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked: %q", out)
	}
	if !strings.Contains(out, "validated") || !strings.Contains(out, "source=x.fa") {
		t.Fatalf("missing fields: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("colour codes written to a non-terminal: %q", out)
	}
}
