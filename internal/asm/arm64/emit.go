package arm64

import (
	"fmt"

	"github.com/tinyrange/a64as/internal/asm"
)

// EmitProgram lowers a fragment into an AArch64 instruction stream using table.
func EmitProgram(table *Table, fragment asm.Fragment) (asm.Program, error) {
	if fragment == nil {
		return asm.Program{}, fmt.Errorf("arm64 asm: fragment is nil")
	}

	ctx := newContext("", table, nil)
	if err := fragment.Emit(ctx); err != nil {
		return asm.Program{}, err
	}
	return ctx.finalize(), nil
}

// EncodeLine parses and encodes a single statement.
func EncodeLine(table *Table, line string) (uint32, error) {
	stmts, err := Parse("", []byte(line))
	if err != nil {
		return 0, err
	}
	if len(stmts) != 1 {
		return 0, fmt.Errorf("arm64 asm: expected one statement, got %d", len(stmts))
	}
	prog, err := EmitProgram(table, stmts[0])
	if err != nil {
		return 0, err
	}
	return prog.Words()[0], nil
}
