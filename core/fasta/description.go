// core/fasta/description.go
package fasta

import "fmt"

// Marker opens every FASTA description line.
const Marker = '>'

// LineKind tells a caller which decoder a line belongs to.
type LineKind int

const (
	BlankLine LineKind = iota
	DescriptionLine
	SequenceLine
)

func (k LineKind) String() string {
	switch k {
	case BlankLine:
		return "blank"
	case DescriptionLine:
		return "description"
	case SequenceLine:
		return "sequence"
	}
	return fmt.Sprintf("LineKind(%d)", int(k))
}

// FormatError is returned when a line handed to Description does not start
// with the description marker.
type FormatError struct {
	Line []byte
}

func (e *FormatError) Error() string {
	if len(e.Line) == 0 {
		return "not a description line: empty line"
	}
	return fmt.Sprintf("not a description line: starts with %q", e.Line[0])
}

// IsDescription reports whether line starts with '>'.
func IsDescription(line []byte) bool {
	return len(line) > 0 && line[0] == Marker
}

// Classify routes a line: empty lines are blank, '>' lines are descriptions,
// everything else is sequence.
func Classify(line []byte) LineKind {
	switch {
	case len(line) == 0:
		return BlankLine
	case line[0] == Marker:
		return DescriptionLine
	}
	return SequenceLine
}

// Description returns the text after '>' up to, not including, the first
// '\r' or '\n'. A trailing terminator is optional. The result shares
// memory with line.
func Description(line []byte) ([]byte, error) {
	if !IsDescription(line) {
		return nil, &FormatError{Line: line}
	}
	rest := line[1:]
	for i, b := range rest {
		if b == '\n' || b == '\r' {
			return rest[:i], nil
		}
	}
	return rest, nil
}

// DescriptionString is Description for string input.
func DescriptionString(line string) (string, error) {
	d, err := Description([]byte(line))
	if err != nil {
		return "", err
	}
	return string(d), nil
}
