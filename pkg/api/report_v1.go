// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for one validated FASTA source.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	Source   string `json:"source"`
	Valid    bool   `json:"valid"`
	Records  int    `json:"records"`
	Lines    int    `json:"lines"`
	Residues int    `json:"residues"`

	Ambiguous int `json:"ambiguous,omitempty"`
	Gaps      int `json:"gaps,omitempty"`

	// Set only for invalid sources.
	Error     string `json:"error,omitempty"`
	ErrorLine int    `json:"error_line,omitempty"`
	ErrorPos  *int   `json:"error_pos,omitempty"` // zero-based column in the line
	Symbol    string `json:"symbol,omitempty"`
}
