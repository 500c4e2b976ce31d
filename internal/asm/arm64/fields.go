package arm64

// field computes the bits one operand contributes to an instruction word.
type field func(ops []Operand) uint32

// encoder turns a matched operand list into an instruction word.
type encoder func(ops []Operand) uint32

// enc ORs the fields into a literal opcode template.
func enc(template uint32, fields ...field) encoder {
	return func(ops []Operand) uint32 {
		word := template
		for _, f := range fields {
			word |= f(ops)
		}
		return word
	}
}

type rule struct {
	pattern Pattern
	encode  encoder
}

func on(p Pattern, e encoder) rule {
	return rule{pattern: p, encode: e}
}

func reg(i int, pos uint) field {
	return func(ops []Operand) uint32 {
		return regBits(ops[i].(Register).Index, pos)
	}
}

func rd(i int) field { return reg(i, posRd) }
func rn(i int) field { return reg(i, posRn) }
func rm(i int) field { return reg(i, posRm) }
func ra(i int) field { return reg(i, posRa) }

// rt2 is the second transfer register of a pair.
func rt2(i int) field { return reg(i, posRa) }

// zr fills a register field with 31.
func zr(pos uint) field {
	return func([]Operand) uint32 {
		return regBits(31, pos)
	}
}

func immf(i int, width, pos uint) field {
	return func(ops []Operand) uint32 {
		return immBits(ops[i].(Immediate).Value, width, pos)
	}
}

func scaledImm(i int, scale int64, width, pos uint) field {
	return func(ops []Operand) uint32 {
		return scaledImmBits(ops[i].(Immediate).Value, scale, width, pos)
	}
}

// invImm encodes the bitwise complement of operand i, as MOVN expects.
func invImm(i int, width, pos uint) field {
	return func(ops []Operand) uint32 {
		return immBits(^ops[i].(Immediate).Value, width, pos)
	}
}

// optional returns 0 when operand i is absent.
func optional(i int, f field) field {
	return func(ops []Operand) uint32 {
		if i >= len(ops) {
			return 0
		}
		return f(ops)
	}
}

// shifts encodes an optional shift operand as kind and amount fields.
func shifts(i int, kindPos, amountPos uint) field {
	return optional(i, func(ops []Operand) uint32 {
		s := ops[i].(Shift)
		return uint32(s.Kind)<<kindPos | immBits(s.Amount, 6, amountPos)
	})
}

// lslShifts encodes an optional "lsl #n" as n/div.
func lslShifts(i int, div int64, width, pos uint) field {
	return optional(i, func(ops []Operand) uint32 {
		return immBits(ops[i].(Shift).Amount/div, width, pos)
	})
}

// sh is the 1-bit "lsl #12" flag of add/sub immediate.
func sh(i int) field { return lslShifts(i, 12, 1, 22) }

// hw selects the 16-bit slot of a wide move.
func hw(i int) field { return lslShifts(i, 16, 2, 21) }

func extendX(i int, kindPos, amountPos uint) field {
	return extendWithDefault(i, UXTX, kindPos, amountPos)
}

func extendW(i int, kindPos, amountPos uint) field {
	return extendWithDefault(i, UXTW, kindPos, amountPos)
}

// extendWithDefault encodes an optional extend operand. An absent operand, or
// "lsl", selects def.
func extendWithDefault(i int, def ExtendKind, kindPos, amountPos uint) field {
	return func(ops []Operand) uint32 {
		kind, amount := def, int64(0)
		if i < len(ops) {
			switch op := ops[i].(type) {
			case Extend:
				kind, amount = op.Kind, op.Amount
			case Shift:
				amount = op.Amount
			}
		}
		return uint32(kind)<<kindPos | immBits(amount, 3, amountPos)
	}
}

func condf(i int, pos uint) field {
	return func(ops []Operand) uint32 {
		return condBits(ops[i].(Condition).Code, pos)
	}
}

func invCond(i int, pos uint) field {
	return func(ops []Operand) uint32 {
		return invertedCondBits(ops[i].(Condition).Code, pos)
	}
}

func subFrom(i int, from int64, pos uint) field {
	return func(ops []Operand) uint32 {
		return subImm6Bits(ops[i].(Immediate).Value, from, pos)
	}
}

func negMod(i int, width int64, pos uint) field {
	return func(ops []Operand) uint32 {
		return negModImm6Bits(ops[i].(Immediate).Value, width, pos)
	}
}

// bitfieldExtract encodes "#lsb, #width" as immr=lsb, imms=lsb+width-1.
func bitfieldExtract(lsb, width int) field {
	return func(ops []Operand) uint32 {
		l := ops[lsb].(Immediate).Value
		w := ops[width].(Immediate).Value
		return immBits(l, 6, 16) | immBits(l+w-1, 6, 10)
	}
}

// bitfieldInsert encodes "#lsb, #width" as immr=-lsb mod size, imms=width-1.
func bitfieldInsert(lsb, width int, size int64) field {
	return func(ops []Operand) uint32 {
		l := ops[lsb].(Immediate).Value
		w := ops[width].(Immediate).Value
		return negModImm6Bits(l, size, 16) | immBits(w-1, 6, 10)
	}
}

func memBaseReg(i int) field {
	return func(ops []Operand) uint32 {
		return regBits(ops[i].(Memory).Base.Index, posRn)
	}
}

// memImm encodes the immediate offset of an address, divided by scale.
func memImm(i int, scale int64, width, pos uint) field {
	return func(ops []Operand) uint32 {
		return scaledImmBits(ops[i].(Memory).Imm(), scale, width, pos)
	}
}

// memIndex encodes Rm, option and S of a register-offset address. Byte
// accesses set S whenever an amount was written.
func memIndex(i int, size int64) field {
	return func(ops []Operand) uint32 {
		m := ops[i].(Memory)
		idx, _ := m.Index()
		kind := defaultIndexExtend(idx)
		if m.Extended {
			kind = m.Extend.Kind
		}
		word := regBits(idx.Index, posRm) | uint32(kind)<<13
		if m.Extend.Amount != 0 || (size == 1 && m.Scaled) {
			word |= 1 << 12
		}
		return word
	}
}

func defaultIndexExtend(idx Register) ExtendKind {
	if idx.Width == W32 {
		return UXTW
	}
	return UXTX
}
