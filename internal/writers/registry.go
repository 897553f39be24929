// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"fasta/internal/validate"
)

// Options tweak presentation only.
type Options struct {
	Header bool // text: print the column header line
}

// ReportWriter serializes a batch of reports.
type ReportWriter func(w io.Writer, reports []validate.Report, opts Options) error

var reportWriters = map[string]ReportWriter{}

// Register installs fn for format (last wins). Called from init blocks.
func Register(format string, fn ReportWriter) { reportWriters[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for k := range reportWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a registered writer.
func Known(format string) bool {
	_, ok := reportWriters[format]
	return ok
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, reports []validate.Report, opts Options) error {
	fn, ok := reportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, reports, opts)
}
