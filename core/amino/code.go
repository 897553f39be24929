// core/amino/code.go
package amino

// Code is one IUPAC amino acid code. No decoder is defined yet; codon
// translation has no agreed table in this project.
type Code uint8

const (
	A    Code = iota // alanine
	P                // proline
	B                // aspartate/asparagine
	Q                // glutamine
	C                // cystine
	R                // arginine
	D                // aspartate
	S                // serine
	E                // glutamate
	T                // threonine
	F                // phenylalanine
	U                // selenocysteine
	G                // glycine
	V                // valine
	H                // histidine
	W                // tryptophan
	I                // isoleucine
	Y                // tyrosine
	K                // lysine
	Z                // glutamate/glutamine
	L                // leucine
	X                // any
	M                // methionine
	N                // asparagine
	Stop             // translation stop
	Gap              // gap of indeterminate length

	numCodes = int(Gap) + 1
)

const symbols = "APBQCRDSETFUGVHWIYKZLXMN*-"

// Codes returns every code in declaration order.
func Codes() []Code {
	out := make([]Code, numCodes)
	for i := range out {
		out[i] = Code(i)
	}
	return out
}

// Symbol returns the one-letter code; Stop is '*' and Gap is '-'.
func (c Code) Symbol() byte {
	if int(c) >= numCodes {
		return '?'
	}
	return symbols[c]
}

func (c Code) String() string {
	switch c {
	case Stop:
		return "Stop"
	case Gap:
		return "Gap"
	}
	if int(c) >= numCodes {
		return "Code(?)"
	}
	return string(symbols[c])
}
