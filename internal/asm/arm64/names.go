package arm64

import "strconv"

// Name tables are built once at package init and only read afterwards.
var (
	registerNames = buildRegisterNames()

	shiftNames = map[string]ShiftKind{
		"lsl": LSL, "lsr": LSR, "asr": ASR, "ror": ROR,
	}

	extendNames = map[string]ExtendKind{
		"uxtb": UXTB, "uxth": UXTH, "uxtw": UXTW, "uxtx": UXTX,
		"sxtb": SXTB, "sxth": SXTH, "sxtw": SXTW, "sxtx": SXTX,
	}

	condLookup = buildCondNames()
)

func buildRegisterNames() map[string]Register {
	names := make(map[string]Register, 72)
	for i := uint8(0); i < 31; i++ {
		n := strconv.Itoa(int(i))
		names["x"+n] = Register{Width: W64, Role: General, Index: i}
		names["w"+n] = Register{Width: W32, Role: General, Index: i}
	}
	names["sp"] = Register{Width: W64, Role: StackPointer, Index: 31}
	names["wsp"] = Register{Width: W32, Role: StackPointer, Index: 31}
	names["xzr"] = Register{Width: W64, Role: General, Index: 31}
	names["wzr"] = Register{Width: W32, Role: General, Index: 31}
	names["fp"] = Register{Width: W64, Role: General, Index: 29}
	names["lr"] = Register{Width: W64, Role: General, Index: 30}
	return names
}

func buildCondNames() map[string]Cond {
	names := make(map[string]Cond, 16)
	for c := EQ; c < AL; c++ {
		names[c.String()] = c
	}
	names["cs"] = HS
	names["cc"] = LO
	return names
}

func lookupRegister(name string) (Register, bool) {
	r, ok := registerNames[name]
	return r, ok
}

func lookupCond(name string) (Cond, bool) {
	c, ok := condLookup[name]
	return c, ok
}
