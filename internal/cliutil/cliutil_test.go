package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.Bool("keep-going", false, "")
	fs.String("output", "", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs,
		[]string{"a.fa", "--output", "json", "-", "--keep-going", "--output=text", "--", "-odd.fa"})
	if got := strings.Join(flagArgs, " "); got != "--output json --keep-going --output=text" {
		t.Fatalf("flags = %q", got)
	}
	if got := strings.Join(posArgs, " "); got != "a.fa - -odd.fa" {
		t.Fatalf("positionals = %q", got)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{b, filepath.Join(dir, "*.fa"), "-"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(got) != 3 || got[0] != b || got[1] != a || got[2] != "-" {
		t.Fatalf("expand = %v", got)
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.fa")}); err == nil {
		t.Fatalf("expected error for empty glob")
	}
}
