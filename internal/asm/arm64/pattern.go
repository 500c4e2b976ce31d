package arm64

// Pred tests the operand at position i. A predicate may look at ops[i+1] but
// never claims it; the next position is still matched on its own.
type Pred func(ops []Operand, i int) bool

// Pattern is a sequence of required predicates followed by optional trailing
// ones. An operand list matches when its length lies between the number of
// required predicates and the total number of predicates, and every present
// operand satisfies the predicate at its position.
type Pattern struct {
	required []Pred
	optional []Pred
}

// P builds a pattern from required predicates.
func P(preds ...Pred) Pattern {
	return Pattern{required: preds}
}

// Opt returns a copy of p with additional optional trailing predicates.
func (p Pattern) Opt(preds ...Pred) Pattern {
	out := Pattern{
		required: p.required,
		optional: append(append([]Pred(nil), p.optional...), preds...),
	}
	return out
}

// Arity returns the smallest and largest operand count the pattern accepts.
func (p Pattern) Arity() (int, int) {
	return len(p.required), len(p.required) + len(p.optional)
}

func (p Pattern) Match(ops []Operand) bool {
	lo, hi := p.Arity()
	if len(ops) < lo || len(ops) > hi {
		return false
	}
	for i, pred := range p.required {
		if !pred(ops, i) {
			return false
		}
	}
	for j, pred := range p.optional {
		i := len(p.required) + j
		if i >= len(ops) {
			break
		}
		if !pred(ops, i) {
			return false
		}
	}
	return true
}

// followedBy accepts position i when p holds and the next operand is either
// absent or satisfies next.
func followedBy(p, next Pred) Pred {
	return func(ops []Operand, i int) bool {
		if !p(ops, i) {
			return false
		}
		return i+1 >= len(ops) || next(ops, i+1)
	}
}

func anyOf(preds ...Pred) Pred {
	return func(ops []Operand, i int) bool {
		for _, p := range preds {
			if p(ops, i) {
				return true
			}
		}
		return false
	}
}

// register matches a register of the given width. In an SP slot index 31
// is the stack pointer, so the zero register is rejected there; elsewhere
// the stack pointer is.
func register(width Width, allowSP bool) Pred {
	return func(ops []Operand, i int) bool {
		r, ok := ops[i].(Register)
		if !ok || r.Width != width {
			return false
		}
		if allowSP {
			return r.Role == StackPointer || r.Index != 31
		}
		return r.Role == General
	}
}

func is[T Operand](ops []Operand, i int) bool {
	_, ok := ops[i].(T)
	return ok
}

var (
	xr      = register(W64, false)
	wr      = register(W32, false)
	xrOrSP  = register(W64, true)
	wrOrWSP = register(W32, true)

	imm    Pred = is[Immediate]
	shift  Pred = is[Shift]
	extend Pred = is[Extend]
	cond   Pred = is[Condition]

	// extension is an extend specifier, or "lsl" which aliases the
	// full-width zero extend.
	extension = anyOf(extend, lsl)
	lsl       = shiftOf(LSL)

	xrShift = followedBy(xr, shift)
	wrShift = followedBy(wr, shift)

	// Arithmetic shifted-register forms reserve the ROR encoding.
	arithShift = anyOf(shiftOf(LSL), shiftOf(LSR), shiftOf(ASR))
	xrArith    = followedBy(xr, arithShift)
	wrArith    = followedBy(wr, arithShift)

	immShift = followedBy(imm, shift)
	xrExtend = followedBy(xr, extension)
	wrExtend = followedBy(wr, extension)
)

func shiftOf(kind ShiftKind) Pred {
	return func(ops []Operand, i int) bool {
		s, ok := ops[i].(Shift)
		return ok && s.Kind == kind
	}
}

func immIn(lo, hi int64) Pred {
	return func(ops []Operand, i int) bool {
		v, ok := ops[i].(Immediate)
		return ok && v.Value >= lo && v.Value <= hi
	}
}

// memory matches an address whose base is a 64-bit register or sp and whose
// mode satisfies ok. Base index 31 is sp, so xzr is not a valid base.
func memory(ok func(m Memory) bool) Pred {
	return func(ops []Operand, i int) bool {
		m, isMem := ops[i].(Memory)
		if !isMem || m.Base.Width != W64 {
			return false
		}
		if m.Base.Role == General && m.Base.Index == 31 {
			return false
		}
		return ok(m)
	}
}

var (
	memBase = memory(func(m Memory) bool {
		return m.Mode == BaseOnly
	})

	// memBaseZero also accepts an explicit zero offset, as in [x0, #0].
	memBaseZero = memory(func(m Memory) bool {
		return m.Mode == BaseOnly || (m.Mode == BaseImmediateOffset && m.Imm() == 0)
	})

	memUnscaled = memory(func(m Memory) bool {
		return m.Mode == BaseOnly || (m.Mode == BaseImmediateOffset && fitsSigned(m.Imm(), 9))
	})

	memPreIndex = memory(func(m Memory) bool {
		return m.Mode == BaseImmediateOffsetPreIndexed && fitsSigned(m.Imm(), 9)
	})

	postIndex = immIn(-256, 255)
)

// memScaled matches the unsigned, size-scaled 12-bit offset form.
func memScaled(size int64) Pred {
	return memory(func(m Memory) bool {
		if m.Mode == BaseOnly {
			return true
		}
		if m.Mode != BaseImmediateOffset {
			return false
		}
		off := m.Imm()
		return off >= 0 && off%size == 0 && off/size < 1<<12
	})
}

// memRegister matches a register offset whose extend is legal for a load or
// store of the given size.
func memRegister(size int64) Pred {
	return memory(func(m Memory) bool {
		idx, ok := m.Index()
		if !ok || idx.Role != General {
			return false
		}
		kind := defaultIndexExtend(idx)
		if m.Extended {
			kind = m.Extend.Kind
		}
		switch kind {
		case UXTW, SXTW:
			if idx.Width != W32 {
				return false
			}
		case UXTX, SXTX:
			if idx.Width != W64 {
				return false
			}
		default:
			return false
		}
		amount := m.Extend.Amount
		return amount == 0 || amount == log2(size)
	})
}

// memPair matches the signed, size-scaled 7-bit offset used by ldp and stp.
func memPair(size int64, preIndexed bool) Pred {
	return memory(func(m Memory) bool {
		switch {
		case preIndexed && m.Mode != BaseImmediateOffsetPreIndexed:
			return false
		case !preIndexed && m.Mode != BaseOnly && m.Mode != BaseImmediateOffset:
			return false
		}
		return fitsPairOffset(m.Imm(), size)
	})
}

func pairPostIndex(size int64) Pred {
	return func(ops []Operand, i int) bool {
		v, ok := ops[i].(Immediate)
		return ok && fitsPairOffset(v.Value, size)
	}
}

func fitsPairOffset(off, size int64) bool {
	return off%size == 0 && fitsSigned(off/size, 7)
}

func fitsSigned(v int64, bits uint) bool {
	limit := int64(1) << (bits - 1)
	return v >= -limit && v < limit
}

func log2(size int64) int64 {
	var n int64
	for size > 1 {
		size >>= 1
		n++
	}
	return n
}
