package arm64

import "fmt"

// Cond is the 4-bit condition field of conditional instructions.
type Cond uint8

const (
	EQ Cond = iota
	NE
	HS
	LO
	MI
	PL
	VS
	VC
	HI
	LS
	GE
	LT
	GT
	LE
	// AL is the "always" encoding. It is not a usable operand.
	AL
)

var condNames = [...]string{
	EQ: "eq", NE: "ne", HS: "hs", LO: "lo",
	MI: "mi", PL: "pl", VS: "vs", VC: "vc",
	HI: "hi", LS: "ls", GE: "ge", LT: "lt",
	GT: "gt", LE: "le", AL: "al",
}

// invertedConds maps each defined condition to its logical negation.
var invertedConds = [...]Cond{
	EQ: NE, NE: EQ,
	HS: LO, LO: HS,
	MI: PL, PL: MI,
	VS: VC, VC: VS,
	HI: LS, LS: HI,
	GE: LT, LT: GE,
	GT: LE, LE: GT,
}

func (c Cond) String() string {
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return fmt.Sprintf("cond(%d)", uint8(c))
}

// Invert returns the complementary condition. Values outside the 14 defined
// conditions are returned unchanged.
func (c Cond) Invert() Cond {
	if int(c) < len(invertedConds) {
		return invertedConds[c]
	}
	return c
}
