package testutil

import (
	"fmt"
	"testing"
)

// Expectation describes one instruction that should appear in the
// disassembly, together with the source statement that produced it.
type Expectation struct {
	Name     string
	Source   string
	Mnemonic string
	Contains []string
}

func (e Expectation) match(line DisasmLine) error {
	if e.Mnemonic != "" && line.Mnemonic != e.Mnemonic {
		return fmt.Errorf("mnemonic=%s, want %s", line.Mnemonic, e.Mnemonic)
	}
	for _, needle := range e.Contains {
		if !line.Contains(needle) {
			return fmt.Errorf("missing %q in %q", needle, line.Normalized)
		}
	}
	return nil
}

// checkOffset verifies that the idx-th instruction sits at byte 4*idx.
func checkOffset(line DisasmLine, idx int) error {
	if want := uint64(4 * idx); line.Offset != want {
		return fmt.Errorf("offset=%#x, want %#x", line.Offset, want)
	}
	return nil
}

// VerifyExpectations checks the disassembly line by line. The emitted
// sections carry no padding, so the instruction count must match exactly and
// instruction idx must sit at offset 4*idx.
func VerifyExpectations(t *testing.T, lines []DisasmLine, expect []Expectation) {
	t.Helper()
	if len(lines) != len(expect) {
		t.Fatalf("objdump returned %d instructions, want %d", len(lines), len(expect))
	}
	for idx, exp := range expect {
		err := checkOffset(lines[idx], idx)
		if err == nil {
			err = exp.match(lines[idx])
		}
		if err != nil {
			t.Errorf("instruction %q (%s) at index %d: %v", exp.Name, exp.Source, idx, err)
		}
	}
}
