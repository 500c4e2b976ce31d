package asm

import (
	"encoding/binary"
)

// Context receives encoded instruction words in program order.
type Context interface {
	EmitWord(word uint32)
}

type Fragment interface {
	Emit(ctx Context) error
}

type Group []Fragment

var (
	_ Fragment = Group{}
)

func (g Group) Emit(ctx Context) error {
	for _, frag := range g {
		if err := frag.Emit(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Program is an ordered, immutable stream of 32-bit instruction words.
type Program struct {
	words []uint32
}

func NewProgram(words []uint32) Program {
	return Program{
		words: append([]uint32(nil), words...),
	}
}

// Words returns a copy of the instruction words.
func (p Program) Words() []uint32 {
	return append([]uint32(nil), p.words...)
}

// Count is the number of instructions.
func (p Program) Count() int {
	return len(p.words)
}

// Len is the size of the encoded stream in bytes.
func (p Program) Len() int {
	return 4 * len(p.words)
}

// Bytes serializes the words little-endian.
func (p Program) Bytes() []byte {
	out := make([]byte, 0, p.Len())
	for _, w := range p.words {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}
