package arm64

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/tinyrange/a64as/internal/asm/testutil"
)

type encodingVector struct {
	Source string `yaml:"source"`
	Word   Hex32  `yaml:"word"`
}

func loadEncodingVectors(t *testing.T) []encodingVector {
	t.Helper()
	data, err := os.ReadFile("testdata/encodings.yaml")
	if err != nil {
		t.Fatalf("read vectors: %v", err)
	}
	var doc struct {
		Vectors []encodingVector `yaml:"vectors"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse vectors: %v", err)
	}
	if len(doc.Vectors) == 0 {
		t.Fatal("no encoding vectors")
	}
	return doc.Vectors
}

func TestEncodingVectors(t *testing.T) {
	table := NewTable()
	for _, v := range loadEncodingVectors(t) {
		got, err := EncodeLine(table, v.Source)
		if err != nil {
			t.Errorf("%s: %v", v.Source, err)
			continue
		}
		if got != uint32(v.Word) {
			t.Errorf("%s = %#08x, want %#08x", v.Source, got, uint32(v.Word))
		}
	}
}

// The vectors are regenerated from llvm-mc; make sure they still agree with it.
func TestEncodingVectorsMatchLLVM(t *testing.T) {
	vectors := loadEncodingVectors(t)
	lines := make([]string, len(vectors))
	for i, v := range vectors {
		lines[i] = v.Source
	}
	words := testutil.EncodeWithLLVM(t, lines)
	for i, v := range vectors {
		if words[i] != uint32(v.Word) {
			t.Errorf("%s: llvm-mc=%#08x, vector=%#08x", v.Source, words[i], uint32(v.Word))
		}
	}
}

func mustEncode(t *testing.T, table *Table, line string) uint32 {
	t.Helper()
	word, err := EncodeLine(table, line)
	if err != nil {
		t.Fatalf("%s: %v", line, err)
	}
	return word
}

func TestEncodeSelectedForms(t *testing.T) {
	table := NewTable()
	tests := []struct {
		line string
		want uint32
	}{
		{"add x1, x2, #5", 0x91001441},
		{"ADD X1, X2, #0x5", 0x91001441},
		{"add x1, x2, x3, lsl #4", 0x8B031041},
		{"add x29, sp, #16", 0x910043FD},
		{"ret", 0xD65F03C0},
		{"ret x30", 0xD65F03C0},
		{"ret lr", 0xD65F03C0},
		{"mov x0, #0xffff", 0xD29FFFE0},
		{"mov w0, #-2", 0x12800020},
		{"movz x0, #1, lsl #32", 0xD2C00020},
		{"lsl w1, w2, #3", 0x531D7041},
		{"asr w1, w2, #5", 0x13057C41},
		{"ubfx x0, x1, #4, #8", 0xD3442C20},
		{"bfi w0, w1, #3, #4", 0x331D0C20},
		{"cset w0, ne", 0x1A9F07E0},
		{"csel x0, x1, x2, ge", 0x9A82A020},
		{"ccmp x1, #3, #4, eq", 0xFA430824},
		{"and x0, x1, x2, ror #3", 0x8AC20C20},
		{"adds w1, w2, w3, uxtb #1", 0x2B230441},
		{"crc32cx w1, w2, x3", 0x9AC35C41},
		{"extr w1, w2, w3, #7", 0x13831C41},
		{"brk #1", 0xD4200020},
		{"dsb", 0xD5033F9F},
		{"dsb #15", 0xD5033F9F},
		{"ldr x1, [x2, #12]", 0xF840C041},
		{"ldr x1, [x2, #-8]", 0xF85F8041},
		{"ldr x1, [x2], #8", 0xF8408441},
		{"ldr x1, [x2, #8]!", 0xF8408C41},
		{"str w1, [sp, x2, lsl #2]", 0xB8227BE1},
		{"ldrb w1, [x2, w3, uxtw]", 0x38634841},
		{"stp w1, w2, [x0, #8]", 0x29010801},
		{"stp x29, x30, [sp, #-16]!", 0xA9BF7BFD},
		{"ldar w1, [x2]", 0x88DFFC41},
		{"stxr w1, x2, [x3]", 0xC8017C62},
		{"swpal x1, x2, [x3]", 0xF8E18062},
		{"stadd w1, [x2]", 0xB821005F},
		{"ldaddal x1, x2, [x3]", 0xF8E10062},
		{"cas w1, w2, [sp]", 0x88A17FE2},
	}
	for _, tt := range tests {
		if got := mustEncode(t, table, tt.line); got != tt.want {
			t.Errorf("%s = %#08x, want %#08x", tt.line, got, tt.want)
		}
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	a, b := NewTable(), NewTable()
	for _, line := range []string{"add x1, x2, #5", "ldr x0, [x1, #8]", "casal x1, x2, [x3]"} {
		first := mustEncode(t, a, line)
		if got := mustEncode(t, a, line); got != first {
			t.Fatalf("%s: second encoding %#08x differs from %#08x", line, got, first)
		}
		if got := mustEncode(t, b, line); got != first {
			t.Fatalf("%s: fresh table gave %#08x, want %#08x", line, got, first)
		}
	}
}

func TestRegisterFieldPlacement(t *testing.T) {
	table := NewTable()
	for r := 0; r < 31; r++ {
		if got, want := mustEncode(t, table, fmt.Sprintf("add x%d, x1, #0", r)), uint32(0x91000020|r); got != want {
			t.Fatalf("Rd=%d: %#08x, want %#08x", r, got, want)
		}
		if got, want := mustEncode(t, table, fmt.Sprintf("add x0, x%d, #0", r)), uint32(0x91000000|r<<5); got != want {
			t.Fatalf("Rn=%d: %#08x, want %#08x", r, got, want)
		}
		if got, want := mustEncode(t, table, fmt.Sprintf("add x0, x1, x%d", r)), uint32(0x8B000020|r<<16); got != want {
			t.Fatalf("Rm=%d: %#08x, want %#08x", r, got, want)
		}
	}
	if got, want := mustEncode(t, table, "add x0, x1, xzr"), uint32(0x8B1F0020); got != want {
		t.Fatalf("xzr as Rm: %#08x, want %#08x", got, want)
	}
}

func TestScaledLoadOffsets(t *testing.T) {
	table := NewTable()
	offsetField := func(word uint32) uint32 { return word >> 10 & 0xfff }

	if got := offsetField(mustEncode(t, table, "ldr x1, [x2, #16]")); got != 2 {
		t.Fatalf("ldr x1, [x2, #16] offset field=%d, want 2", got)
	}
	if got := offsetField(mustEncode(t, table, "ldr w1, [x2, #16]")); got != 4 {
		t.Fatalf("ldr w1, [x2, #16] offset field=%d, want 4", got)
	}
	if got := offsetField(mustEncode(t, table, "ldrb w1, [x2, #16]")); got != 16 {
		t.Fatalf("ldrb w1, [x2, #16] offset field=%d, want 16", got)
	}
	// Offsets that cannot be scaled fall back to the unscaled form.
	if got, want := mustEncode(t, table, "ldr x1, [x2, #12]"), mustEncode(t, table, "ldur x1, [x2, #12]"); got != want {
		t.Fatalf("misaligned ldr=%#08x, want ldur %#08x", got, want)
	}
}

func TestShiftedFormPreferred(t *testing.T) {
	table := NewTable()
	plain := mustEncode(t, table, "add x1, x2, x3")
	shifted := mustEncode(t, table, "add x1, x2, x3, lsl #4")
	if plain == shifted {
		t.Fatalf("shifted and plain forms both encode as %#08x", plain)
	}
	if got := shifted >> 10 & 0x3f; got != 4 {
		t.Fatalf("shift amount field=%d, want 4", got)
	}
}

func TestZeroRegisterOutsideSPSlots(t *testing.T) {
	table := NewTable()
	tests := []struct {
		line string
		want uint32
	}{
		{"mov x0, xzr", 0xAA1F03E0},
		{"add x0, x1, xzr", 0x8B1F0020},
		{"adds xzr, x1, #1", 0xB100043F},
		{"ldr x0, [x1, xzr]", 0xF87F6820},
		{"eor x0, x1, x2, ror #1", 0xCAC20420},
	}
	for _, tt := range tests {
		if got := mustEncode(t, table, tt.line); got != tt.want {
			t.Errorf("%s = %#08x, want %#08x", tt.line, got, tt.want)
		}
	}
}

func TestImmediatesAreTruncated(t *testing.T) {
	table := NewTable()
	// add only has 12 immediate bits; the excess is dropped.
	if got, want := mustEncode(t, table, "add x0, x0, #4096"), uint32(0x91000000); got != want {
		t.Fatalf("add #4096 = %#08x, want %#08x", got, want)
	}
}

func TestEncodeErrors(t *testing.T) {
	table := NewTable()
	tests := []struct {
		line string
		want error
	}{
		{"frobnicate x0", ErrUnknownMnemonic},
		{"add x0", ErrNoMatchingForm},
		{"add x0, w1, #1", ErrNoMatchingForm},
		{"ret x0, x1", ErrNoMatchingForm},
		{"ldr x0, [w1]", ErrNoMatchingForm},
		{"ldrb w0, [x1, #5000]", ErrNoMatchingForm},
		{"ldp x0, x1, [x2, #4]", ErrNoMatchingForm},
		{"cset x0", ErrNoMatchingForm},
		// Register 31 in these slots is sp, which xzr/wzr must not alias.
		{"add x0, xzr, #1", ErrNoMatchingForm},
		{"add wzr, w1, #1", ErrNoMatchingForm},
		{"cmp xzr, #1", ErrNoMatchingForm},
		{"mov sp, xzr", ErrNoMatchingForm},
		{"ldr x0, [xzr]", ErrNoMatchingForm},
		{"stp x0, x1, [xzr, #16]", ErrNoMatchingForm},
		// ROR is reserved in the arithmetic shifted-register forms.
		{"add x0, x1, x2, ror #1", ErrNoMatchingForm},
		{"subs w0, w1, w2, ror #3", ErrNoMatchingForm},
		{"cmp x1, x2, ror #4", ErrNoMatchingForm},
		{"neg x0, x1, ror #2", ErrNoMatchingForm},
	}
	for _, tt := range tests {
		_, err := EncodeLine(table, tt.line)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: err=%v, want %v", tt.line, err, tt.want)
			continue
		}
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Errorf("%s: err=%T, want *EncodingError", tt.line, err)
		}
	}
}
