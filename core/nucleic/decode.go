// core/nucleic/decode.go
package nucleic

import (
	"fmt"
	"strings"
)

// Sequence is an ordered run of codes, one per input symbol.
type Sequence []Code

// InvalidSymbolError reports the first symbol outside the IUPAC nucleotide
// alphabet and its zero-based position in the decoded line.
type InvalidSymbolError struct {
	Symbol byte
	Pos    int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid nucleotide symbol %q at position %d", e.Symbol, e.Pos)
}

// lookup maps a byte to code+1; zero marks a byte outside the alphabet.
// Filled once in init and read-only afterwards.
var lookup [256]uint8

func init() {
	for i := 0; i < len(symbols); i++ {
		s := symbols[i]
		lookup[s] = uint8(i) + 1
		if s >= 'A' && s <= 'Z' {
			lookup[s+('a'-'A')] = uint8(i) + 1
		}
	}
}

// Lookup returns the code for a single symbol, ignoring ASCII case.
func Lookup(b byte) (Code, bool) {
	v := lookup[b]
	if v == 0 {
		return 0, false
	}
	return Code(v - 1), true
}

// Decode maps every symbol of line (no line terminator) to its code.
// Letters are case-insensitive and '-' is Gap. The first symbol outside the
// alphabet aborts the decode with an *InvalidSymbolError and a nil Sequence.
func Decode(line []byte) (Sequence, error) {
	seq := make(Sequence, 0, len(line))
	for i, b := range line {
		c, ok := Lookup(b)
		if !ok {
			return nil, &InvalidSymbolError{Symbol: b, Pos: i}
		}
		seq = append(seq, c)
	}
	return seq, nil
}

// DecodeString is Decode for string input.
func DecodeString(line string) (Sequence, error) {
	seq := make(Sequence, 0, len(line))
	for i := 0; i < len(line); i++ {
		c, ok := Lookup(line[i])
		if !ok {
			return nil, &InvalidSymbolError{Symbol: line[i], Pos: i}
		}
		seq = append(seq, c)
	}
	return seq, nil
}

// String renders s with uppercase IUPAC letters.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		b.WriteByte(c.Symbol())
	}
	return b.String()
}

// Equal reports whether a and b hold the same codes in the same order.
func Equal(a, b Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
