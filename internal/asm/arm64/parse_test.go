package arm64

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	x1  = Register{Width: W64, Index: 1}
	x2  = Register{Width: W64, Index: 2}
	x3  = Register{Width: W64, Index: 3}
	w3  = Register{Width: W32, Index: 3}
	spR = Register{Width: W64, Role: StackPointer, Index: 31}
)

func TestParseOperands(t *testing.T) {
	tests := []struct {
		src  string
		want []Operand
	}{
		{"ret", nil},
		{"add x1, x2, #5", []Operand{x1, x2, Immediate{Value: 5}}},
		{"add x1, x2, #-0x10", []Operand{x1, x2, Immediate{Value: -16}}},
		{"add x1, x2, x3, lsl #4", []Operand{x1, x2, x3, Shift{Kind: LSL, Amount: 4}}},
		{"add x1, x2, w3, sxtw", []Operand{x1, x2, w3, Extend{Kind: SXTW}}},
		{"csel x1, x2, x3, cs", []Operand{x1, x2, x3, Condition{Code: HS}}},
		{"mov x29, sp", []Operand{Register{Width: W64, Index: 29}, spR}},
		{"mov fp, lr", []Operand{Register{Width: W64, Index: 29}, Register{Width: W64, Index: 30}}},
		{"add xzr, x1, x2", []Operand{Register{Width: W64, Index: 31}, x1, x2}},
		{"ldr x1, [x2]", []Operand{x1, Memory{Mode: BaseOnly, Base: x2}}},
		{"ldr x1, [x2, #8]", []Operand{x1, Memory{Mode: BaseImmediateOffset, Base: x2, Offset: Immediate{Value: 8}}}},
		{"ldr x1, [sp, #-16]!", []Operand{x1, Memory{Mode: BaseImmediateOffsetPreIndexed, Base: spR, Offset: Immediate{Value: -16}}}},
		{"ldr x1, [x2]!", []Operand{x1, Memory{Mode: BaseImmediateOffsetPreIndexed, Base: x2, Offset: Immediate{}}}},
		{"ldr x1, [x2], #8", []Operand{x1, Memory{Mode: BaseOnly, Base: x2}, Immediate{Value: 8}}},
		{"ldr x1, [x2, x3]", []Operand{x1, Memory{Mode: BaseRegisterOffset, Base: x2, Offset: x3}}},
		{"ldr x1, [x2, w3, uxtw #3]", []Operand{x1, Memory{
			Mode: BaseRegisterOffset, Base: x2, Offset: w3,
			Extend: Extend{Kind: UXTW, Amount: 3}, Extended: true, Scaled: true,
		}}},
		{"ldrb w1, [x2, x3, lsl #0]", []Operand{Register{Width: W32, Index: 1}, Memory{
			Mode: BaseRegisterOffset, Base: x2, Offset: x3,
			Extend: Extend{Kind: UXTX}, Extended: true, Scaled: true,
		}}},
	}
	for _, tt := range tests {
		stmts, err := Parse("", []byte(tt.src))
		if err != nil {
			t.Errorf("%s: %v", tt.src, err)
			continue
		}
		if len(stmts) != 1 {
			t.Errorf("%s: got %d statements, want 1", tt.src, len(stmts))
			continue
		}
		if diff := cmp.Diff(tt.want, stmts[0].Operands); diff != "" {
			t.Errorf("%s: operands mismatch (-want +got):\n%s", tt.src, diff)
		}
	}
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	src := "\n  // prologue\n\tadd x1, x2, #5 ; trailing\n\n; only a comment\nRET\r\n"
	stmts, err := Parse("prog.s", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := make([]string, len(stmts))
	for i, s := range stmts {
		got[i] = s.String()
	}
	if diff := cmp.Diff([]string{"add x1, x2, #5", "ret"}, got); diff != "" {
		t.Fatalf("statements mismatch (-want +got):\n%s", diff)
	}
	if stmts[0].Line != 3 || stmts[1].Line != 6 {
		t.Fatalf("lines = %d, %d, want 3, 6", stmts[0].Line, stmts[1].Line)
	}
	if stmts[0].Text != "add x1, x2, #5 ; trailing" {
		t.Fatalf("source text = %q", stmts[0].Text)
	}
}

func TestParseAllowsFiveOperands(t *testing.T) {
	stmts, err := Parse("", []byte("madd x1, x2, x3, x1, lsl #2"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := len(stmts[0].Operands); got != MaxOperands {
		t.Fatalf("got %d operands, want %d", got, MaxOperands)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
		msg  string
	}{
		{"add x1, x2, q7", 1, "unknown identifier"},
		{"nop\nldr x1, [x2, #8", 2, "missing ']'"},
		{"ldr x1, [x2, x3]!", 1, "misplaced '!'"},
		{"add x1, x2, #12ab", 1, "malformed numeric literal"},
		{"add x1, x2, #0x", 1, "malformed numeric literal"},
		{"add x1, x2, #99999999999999999999", 1, "out of range"},
		{"add x1, x2 x3", 1, "expected end of line"},
		{"add x1, x2, #1, x3, x4, x5", 1, "too many operands"},
		{"add x1, x2, x3, lsl #-1", 1, "negative shift amount"},
		{"ret\n\n\tadd x1, x2, @", 3, "unexpected character"},
		{"#5", 1, "expected mnemonic"},
	}
	for _, tt := range tests {
		_, err := Parse("", []byte(tt.src))
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Errorf("%q: err=%v, want *SyntaxError", tt.src, err)
			continue
		}
		if synErr.Line != tt.line {
			t.Errorf("%q: line=%d, want %d", tt.src, synErr.Line, tt.line)
		}
		if !strings.Contains(synErr.Msg, tt.msg) {
			t.Errorf("%q: message %q does not mention %q", tt.src, synErr.Msg, tt.msg)
		}
	}
}

func TestSyntaxErrorFormat(t *testing.T) {
	_, err := Parse("boot.s", []byte("nop\nadd x1, x2, q7\n"))
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !strings.HasPrefix(got, "boot.s:2: ") {
		t.Fatalf("error %q lacks path:line prefix", got)
	}
}

func TestParserNextStreams(t *testing.T) {
	p := NewParser("", []byte("nop\nret\n"))
	var names []string
	for {
		stmt, ok, err := p.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		names = append(names, stmt.Mnemonic)
	}
	if diff := cmp.Diff([]string{"nop", "ret"}, names); diff != "" {
		t.Fatalf("mnemonics mismatch (-want +got):\n%s", diff)
	}
	if _, ok, err := p.Next(); ok || err != nil {
		t.Fatalf("Next after end = %v, %v", ok, err)
	}
}
