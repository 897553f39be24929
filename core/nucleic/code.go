// core/nucleic/code.go
package nucleic

// Code is one IUPAC nucleotide code. It fits in a single byte so that a
// Sequence costs one byte per residue.
type Code uint8

const (
	A   Code = iota // adenosine
	C               // cytidine
	G               // guanine
	T               // thymidine
	N               // A/G/C/T (any)
	U               // uridine
	K               // G/T (keto)
	S               // G/C (strong)
	Y               // T/C (pyrimidine)
	M               // A/C (amino)
	W               // A/T (weak)
	R               // G/A (purine)
	B               // G/T/C
	D               // G/A/T
	H               // A/C/T
	V               // G/C/A
	Gap             // gap of indeterminate length

	numCodes = int(Gap) + 1
)

// symbols is indexed by Code.
const symbols = "ACGTNUKSYMWRBDHV-"

// bases lists the unambiguous bases each code stands for. U pairs like T.
var bases = [numCodes]string{
	A: "A", C: "C", G: "G", T: "T", N: "ACGT", U: "U",
	K: "GT", S: "CG", Y: "CT", M: "AC", W: "AT", R: "AG",
	B: "CGT", D: "AGT", H: "ACT", V: "ACG",
	Gap: "",
}

// Codes returns every code in declaration order.
func Codes() []Code {
	out := make([]Code, numCodes)
	for i := range out {
		out[i] = Code(i)
	}
	return out
}

// Valid reports whether c is one of the declared codes.
func (c Code) Valid() bool { return int(c) < numCodes }

// Symbol returns the uppercase IUPAC letter for c ('-' for Gap).
func (c Code) Symbol() byte {
	if !c.Valid() {
		return '?'
	}
	return symbols[c]
}

func (c Code) String() string {
	if c == Gap {
		return "Gap"
	}
	if !c.Valid() {
		return "Code(?)"
	}
	return string(symbols[c])
}

// Bases returns the unambiguous bases c may stand for, e.g. R -> "AG".
// Gap stands for nothing.
func (c Code) Bases() string {
	if !c.Valid() {
		return ""
	}
	return bases[c]
}

// IsAmbiguous reports whether c stands for more than one base.
func (c Code) IsAmbiguous() bool { return len(c.Bases()) > 1 }
