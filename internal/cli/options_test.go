// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"testing"

	"fasta/internal/config"
)

func parse(args ...string) (Options, error) {
	var opt Options
	fs := NewValidateFlagSet(&opt)
	err := ParseValidate(fs, &opt, args)
	return opt, err
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := parse(args...)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "ref.fa")
	if o.Output != "text" || o.LogLevel != "info" || o.KeepGoing || !o.Header || o.Quiet {
		t.Errorf("unexpected defaults %+v", o)
	}
	if len(o.Files) != 1 || o.Files[0] != "ref.fa" {
		t.Errorf("files = %v", o.Files)
	}
}

func TestInterleavedFlags(t *testing.T) {
	o := mustParse(t, "a.fa", "-o", "json", "-", "-k", "--no-header", "b.fa")
	if o.Output != "json" || !o.KeepGoing || o.Header {
		t.Errorf("bad parse %+v", o)
	}
	if len(o.Files) != 3 || o.Files[1] != "-" {
		t.Errorf("files = %v", o.Files)
	}
}

func TestErrorNoFiles(t *testing.T) {
	if _, err := parse("--output", "json"); err == nil {
		t.Fatalf("expected error when no files are given")
	}
}

func TestErrorBadOutput(t *testing.T) {
	if _, err := parse("--output", "fasta", "a.fa"); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}

func TestErrorBadLogLevel(t *testing.T) {
	if _, err := parse("--log-level", "loud", "a.fa"); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}

func TestHelp(t *testing.T) {
	if _, err := parse("-h"); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want flag.ErrHelp, got %v", err)
	}
}

func TestApplyConfigFlagsWin(t *testing.T) {
	o := mustParse(t, "-o", "jsonl", "a.fa")
	cfg := config.Default()
	cfg.Output = "json"
	cfg.LogLevel = "debug"
	cfg.KeepGoing = true
	cfg.NoHeader = true
	if err := o.ApplyConfig(cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if o.Output != "jsonl" {
		t.Errorf("flag should beat config, got %q", o.Output)
	}
	if o.LogLevel != "debug" || !o.KeepGoing || o.Header {
		t.Errorf("config values not applied: %+v", o)
	}
}

func TestApplyConfigRejectsBadOutput(t *testing.T) {
	o := mustParse(t, "a.fa")
	cfg := config.Default()
	cfg.Output = "xml"
	if err := o.ApplyConfig(cfg); err == nil {
		t.Fatalf("expected error for config output xml")
	}
}
