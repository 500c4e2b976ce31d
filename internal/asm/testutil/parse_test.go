package testutil

import "testing"

func TestParseEncodings(t *testing.T) {
	out := "\t.text\n" +
		"\tadd\tx1, x2, #5                    // encoding: [0x41,0x14,0x00,0x91]\n" +
		"\tret                              // encoding: [0xc0,0x03,0x5f,0xd6]\n"
	words, err := parseEncodings(out)
	if err != nil {
		t.Fatalf("parseEncodings: %v", err)
	}
	want := []uint32{0x91001441, 0xD65F03C0}
	if len(words) != len(want) {
		t.Fatalf("got %d words, want %d", len(words), len(want))
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("word %d = %#08x, want %#08x", i, words[i], want[i])
		}
	}
}

func TestParseEncodingsRejectsShortEncoding(t *testing.T) {
	if _, err := parseEncodings("\tnop // encoding: [0x1f,0x20]\n"); err == nil {
		t.Fatal("expected error for a two byte encoding")
	}
}

func TestParseObjdumpOutput(t *testing.T) {
	out := "\nsink.o:\tfile format elf64-littleaarch64\n\n" +
		"Disassembly of section .text:\n\n" +
		"0000000000000000 <_start>:\n" +
		"       0:      \tadd\tx1, x2, #5\n" +
		"       4:      \tmov\tx0, #4660                // =0x1234\n" +
		"       8:      \tldur\tx3, [x4, #-8]\n" +
		"       c:      \tret\n"
	lines, err := parseObjdumpOutput(out)
	if err != nil {
		t.Fatalf("parseObjdumpOutput: %v", err)
	}
	want := []struct {
		offset     uint64
		mnemonic   string
		normalized string
	}{
		{0x0, "add", "add x1, x2, #5"},
		{0x4, "mov", "mov x0, #4660"},
		{0x8, "ldur", "ldur x3, [x4, #-8]"},
		{0xc, "ret", "ret"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %+v", len(lines), len(want), lines)
	}
	for i, w := range want {
		l := lines[i]
		if l.Section != ".text" || l.Symbol != "_start" {
			t.Errorf("line %d in %s <%s>, want .text <_start>", i, l.Section, l.Symbol)
		}
		if l.Offset != w.offset || l.Mnemonic != w.mnemonic || l.Normalized != w.normalized {
			t.Errorf("line %d = {%#x %q %q}, want {%#x %q %q}",
				i, l.Offset, l.Mnemonic, l.Normalized, w.offset, w.mnemonic, w.normalized)
		}
	}
}

func TestParseObjdumpOutputIgnoresHeaders(t *testing.T) {
	lines, err := parseObjdumpOutput("\nempty.o:\tfile format elf64-littleaarch64\n\nDisassembly of section .text:\n")
	if err != nil {
		t.Fatalf("parseObjdumpOutput: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("got %d lines from an empty section: %+v", len(lines), lines)
	}
}

func TestCheckOffset(t *testing.T) {
	lines := []DisasmLine{
		{Offset: 0, Normalized: "nop", Mnemonic: "nop"},
		{Offset: 4, Normalized: "ret", Mnemonic: "ret"},
	}
	if err := checkOffset(lines[1], 1); err != nil {
		t.Fatalf("checkOffset: %v", err)
	}
	if err := checkOffset(lines[1], 2); err == nil {
		t.Fatal("expected offset mismatch")
	}
}

func TestExpectationMatch(t *testing.T) {
	line := DisasmLine{Text: "ldr\tx1, [x2, #16]", Normalized: "ldr x1, [x2, #16]", Mnemonic: "ldr"}
	if err := (Expectation{Mnemonic: "ldr", Contains: []string{"x1", "[x2, #16]"}}).match(line); err != nil {
		t.Fatalf("match: %v", err)
	}
	if err := (Expectation{Mnemonic: "ldur"}).match(line); err == nil {
		t.Fatal("expected mnemonic mismatch")
	}
	if err := (Expectation{Contains: []string{"x3"}}).match(line); err == nil {
		t.Fatal("expected missing operand")
	}
}
