// internal/writers/report.go
package writers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"fasta-core/nucleic"

	"fasta/internal/validate"
	"fasta/pkg/api"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TextHeader is the column header of the text format.
const TextHeader = "# source\tstatus\trecords\tresidues\terror"

func init() {
	Register(FormatText, writeText)
	Register(FormatJSON, writeJSON)
	Register(FormatJSONL, writeJSONL)
}

// ToAPIReport converts a report into the v1 wire schema.
func ToAPIReport(r validate.Report) api.ReportV1 {
	out := api.ReportV1{
		Source:   r.Source,
		Valid:    r.Valid(),
		Records:  r.Records,
		Lines:    r.Lines,
		Residues: r.Residues,

		Ambiguous: r.Ambiguous,
		Gaps:      r.Gaps,
	}
	if r.Err == nil {
		return out
	}
	out.Error = r.Err.Error()
	var le *validate.LineError
	if errors.As(r.Err, &le) {
		out.ErrorLine = le.Line
	}
	var ise *nucleic.InvalidSymbolError
	if errors.As(r.Err, &ise) {
		pos := ise.Pos
		out.ErrorPos = &pos
		out.Symbol = string([]byte{ise.Symbol})
	}
	return out
}

func writeText(w io.Writer, reports []validate.Report, opts Options) error {
	if opts.Header {
		if _, err := fmt.Fprintln(w, TextHeader); err != nil {
			return err
		}
	}
	for _, r := range reports {
		status, msg := "ok", "-"
		if !r.Valid() {
			status = "invalid"
			msg = strings.ReplaceAll(r.Err.Error(), "\t", " ")
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			r.Source, status, r.Records, r.Residues, msg); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, reports []validate.Report, _ Options) error {
	list := make([]api.ReportV1, 0, len(reports))
	for _, r := range reports {
		list = append(list, ToAPIReport(r))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

func writeJSONL(w io.Writer, reports []validate.Report, _ Options) error {
	enc := json.NewEncoder(w)
	for _, r := range reports {
		if err := enc.Encode(ToAPIReport(r)); err != nil {
			return err
		}
	}
	return nil
}
