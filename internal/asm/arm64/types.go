package arm64

import (
	"fmt"
	"strconv"
)

// Operand is one parsed instruction argument. The concrete types are
// Register, Immediate, Shift, Extend, Condition and Memory.
type Operand interface {
	fmt.Stringer
	isOperand()
}

var (
	_ Operand = Register{}
	_ Operand = Immediate{}
	_ Operand = Shift{}
	_ Operand = Extend{}
	_ Operand = Condition{}
	_ Operand = Memory{}
)

type Width uint8

const (
	W32 Width = 32
	W64 Width = 64
)

type Role uint8

const (
	// General registers use index 31 for the zero register.
	General Role = iota
	StackPointer
)

// Register stores the register index plus the width used by the instruction.
type Register struct {
	Width Width
	Role  Role
	Index uint8
}

func (Register) isOperand() {}

func (r Register) String() string {
	prefix := "x"
	if r.Width == W32 {
		prefix = "w"
	}
	switch {
	case r.Role == StackPointer && r.Width == W32:
		return "wsp"
	case r.Role == StackPointer:
		return "sp"
	case r.Index == 31:
		return prefix + "zr"
	}
	return prefix + strconv.Itoa(int(r.Index))
}

// Immediate is a literal value. Its width and signedness are decided by the
// instruction form that consumes it.
type Immediate struct {
	Value int64
}

func (Immediate) isOperand() {}

func (i Immediate) String() string {
	return "#" + strconv.FormatInt(i.Value, 10)
}

type ShiftKind uint8

const (
	LSL ShiftKind = iota
	LSR
	ASR
	ROR
)

var shiftKindNames = [...]string{"lsl", "lsr", "asr", "ror"}

func (k ShiftKind) String() string {
	if int(k) < len(shiftKindNames) {
		return shiftKindNames[k]
	}
	return fmt.Sprintf("shift(%d)", uint8(k))
}

type Shift struct {
	Kind   ShiftKind
	Amount int64
}

func (Shift) isOperand() {}

func (s Shift) String() string {
	return fmt.Sprintf("%s #%d", s.Kind, s.Amount)
}

type ExtendKind uint8

const (
	UXTB ExtendKind = iota
	UXTH
	UXTW
	UXTX
	SXTB
	SXTH
	SXTW
	SXTX
)

var extendKindNames = [...]string{"uxtb", "uxth", "uxtw", "uxtx", "sxtb", "sxth", "sxtw", "sxtx"}

func (k ExtendKind) String() string {
	if int(k) < len(extendKindNames) {
		return extendKindNames[k]
	}
	return fmt.Sprintf("extend(%d)", uint8(k))
}

type Extend struct {
	Kind   ExtendKind
	Amount int64
}

func (Extend) isOperand() {}

func (e Extend) String() string {
	if e.Amount == 0 {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s #%d", e.Kind, e.Amount)
}

type Condition struct {
	Code Cond
}

func (Condition) isOperand() {}

func (c Condition) String() string {
	return c.Code.String()
}

type AddrMode uint8

const (
	BaseOnly AddrMode = iota
	BaseImmediateOffset
	BaseImmediateOffsetPreIndexed
	BaseRegisterOffset
)

// Memory is a bracketed address. Offset is an Immediate for the immediate
// modes, a Register for BaseRegisterOffset and nil for BaseOnly. Extend only
// applies to BaseRegisterOffset; Extended records whether it was written and
// Scaled whether it carried an explicit amount, even #0.
type Memory struct {
	Mode     AddrMode
	Base     Register
	Offset   Operand
	Extend   Extend
	Extended bool
	Scaled   bool
}

func (Memory) isOperand() {}

// Imm returns the immediate offset, or 0 when the offset is not an immediate.
func (m Memory) Imm() int64 {
	if imm, ok := m.Offset.(Immediate); ok {
		return imm.Value
	}
	return 0
}

// Index returns the offset register of a register-offset address.
func (m Memory) Index() (Register, bool) {
	reg, ok := m.Offset.(Register)
	return reg, ok && m.Mode == BaseRegisterOffset
}

func (m Memory) String() string {
	switch m.Mode {
	case BaseImmediateOffset:
		return fmt.Sprintf("[%s, #%d]", m.Base, m.Imm())
	case BaseImmediateOffsetPreIndexed:
		return fmt.Sprintf("[%s, #%d]!", m.Base, m.Imm())
	case BaseRegisterOffset:
		idx, _ := m.Index()
		if m.Scaled && m.Extend.Amount == 0 {
			return fmt.Sprintf("[%s, %s, %s #0]", m.Base, idx, m.Extend.Kind)
		}
		if m.Extended {
			return fmt.Sprintf("[%s, %s, %s]", m.Base, idx, m.Extend)
		}
		return fmt.Sprintf("[%s, %s]", m.Base, idx)
	}
	return fmt.Sprintf("[%s]", m.Base)
}
