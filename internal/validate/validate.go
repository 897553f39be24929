// internal/validate/validate.go
package validate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"fasta-core/fasta"
	"fasta-core/nucleic"

	"fasta/internal/seqio"
)

// ErrOrphanSequence marks sequence data that appears before any description.
var ErrOrphanSequence = errors.New("sequence line before first description")

// LineError pins a parse failure to its 1-based line number.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

// Report summarises one validated source. Err is nil when the source is
// valid; otherwise it holds the first problem found.
type Report struct {
	Source    string
	Records   int
	Lines     int
	Residues  int
	Ambiguous int // residues standing for more than one base (N, R, Y, ...)
	Gaps      int
	Err       error
}

func (r Report) Valid() bool { return r.Err == nil }

// File opens path ("-" for stdin, gzip transparently) and validates it.
// Open failures are reported in Report.Err.
func File(ctx context.Context, path string) Report {
	rc, err := seqio.Open(path)
	if err != nil {
		return Report{Source: path, Err: err}
	}
	defer rc.Close()
	return Reader(ctx, rc, path)
}

// Reader validates a FASTA stream line by line and stops at the first error.
// Each line is routed either to the description extractor or to the
// nucleotide decoder. Blank lines are ignored.
func Reader(ctx context.Context, r io.Reader, source string) Report {
	rep := Report{Source: source}
	br := bufio.NewReaderSize(r, 64<<10)
	for {
		select {
		case <-ctx.Done():
			rep.Err = ctx.Err()
			return rep
		default:
		}

		line, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			// long single-line sequences: copy the head out of the buffer
			// before the next read reuses it
			head := append([]byte(nil), line...)
			var rest []byte
			rest, err = br.ReadBytes('\n')
			line = append(head, rest...)
		}
		eof := err == io.EOF
		if err != nil && !eof {
			rep.Err = fmt.Errorf("read %s: %w", source, err)
			return rep
		}
		if eof && len(line) == 0 {
			return rep
		}
		rep.Lines++
		if lerr := rep.consume(trimEOL(line)); lerr != nil {
			rep.Err = &LineError{Line: rep.Lines, Err: lerr}
			return rep
		}
		if eof {
			return rep
		}
	}
}

func (rep *Report) consume(line []byte) error {
	switch fasta.Classify(line) {
	case fasta.BlankLine:
		return nil
	case fasta.DescriptionLine:
		if _, err := fasta.Description(line); err != nil {
			return err
		}
		rep.Records++
		return nil
	}
	if rep.Records == 0 {
		return ErrOrphanSequence
	}
	seq, err := nucleic.Decode(line)
	if err != nil {
		return err
	}
	rep.Residues += len(seq)
	for _, c := range seq {
		switch {
		case c == nucleic.Gap:
			rep.Gaps++
		case c.IsAmbiguous():
			rep.Ambiguous++
		}
	}
	return nil
}

func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}
