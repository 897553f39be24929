// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func list(t *testing.T, dir string) []pkg {
	t.Helper()
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list in %s: %v", dir, err)
	}
	var pkgs []pkg
	dec := json.NewDecoder(&out)
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs
}

// The parsing core stays pure: standard library and its own packages only.
func TestCoreImportsStdlibOnly(t *testing.T) {
	var violations []string
	for _, p := range list(t, "../../core") {
		for _, dep := range p.Imports {
			if strings.HasPrefix(dep, "fasta-core/") {
				continue
			}
			// stdlib import paths have no dot in the first element
			if first, _, _ := strings.Cut(dep, "/"); strings.Contains(first, ".") {
				violations = append(violations, p.ImportPath+" → "+dep)
			}
		}
	}
	if len(violations) > 0 {
		t.Fatalf("core imports non-stdlib packages:\n  %s", strings.Join(violations, "\n  "))
	}
}

func TestImportBoundaries(t *testing.T) {
	bans := map[string][]string{
		"fasta/internal/validate": {
			"fasta/internal/writers", "fasta/internal/cli", "fasta/internal/app",
			"fasta/internal/logging", "fasta/internal/config", "fasta/cmd/",
		},
		"fasta/internal/seqio": {
			"fasta/internal/validate", "fasta/internal/writers", "fasta/internal/cli",
			"fasta/internal/app", "fasta/cmd/",
		},
		"fasta/internal/writers": {
			"fasta/internal/cli", "fasta/internal/app", "fasta/internal/config", "fasta/cmd/",
		},
		"fasta/internal/config": {
			"fasta/internal/cli", "fasta/internal/app", "fasta/cmd/",
		},
	}

	var violations []string
	for _, p := range list(t, "../..") {
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}
	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
