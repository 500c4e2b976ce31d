package arm64

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"testing"

	"github.com/tinyrange/a64as/internal/asm"
)

func twoInstructionProgram() asm.Program {
	return asm.NewProgram([]uint32{0x91001441, 0xD65F03C0})
}

func TestRelocatableELFLayout(t *testing.T) {
	obj, err := RelocatableELF(twoInstructionProgram())
	if err != nil {
		t.Fatalf("RelocatableELF failed: %v", err)
	}
	if got, want := len(obj), 648; got != want {
		t.Fatalf("object length=%d, want %d", got, want)
	}
	if got, want := ObjectSize(8), len(obj); got != want {
		t.Fatalf("ObjectSize(8)=%d, want %d", got, want)
	}
	if !bytes.Equal(obj[64:72], []byte{0x41, 0x14, 0x00, 0x91, 0xc0, 0x03, 0x5f, 0xd6}) {
		t.Fatalf(".text bytes=% x", obj[64:72])
	}
	if got := binary.LittleEndian.Uint16(obj[54:]); got != 56 {
		t.Fatalf("e_phentsize=%d, want 56", got)
	}
}

func TestRelocatableELFParses(t *testing.T) {
	obj, err := RelocatableELF(twoInstructionProgram())
	if err != nil {
		t.Fatalf("RelocatableELF failed: %v", err)
	}

	f, err := elf.NewFile(bytes.NewReader(obj))
	if err != nil {
		t.Fatalf("parse ELF: %v", err)
	}
	defer f.Close()

	if got, want := f.Class, elf.ELFCLASS64; got != want {
		t.Fatalf("class=%v, want %v", got, want)
	}
	if got, want := f.Data, elf.ELFDATA2LSB; got != want {
		t.Fatalf("data=%v, want %v", got, want)
	}
	if got, want := f.Type, elf.ET_REL; got != want {
		t.Fatalf("type=%v, want %v", got, want)
	}
	if got, want := f.Machine, elf.EM_AARCH64; got != want {
		t.Fatalf("machine=%v, want %v", got, want)
	}
	if f.Entry != 0 || len(f.Progs) != 0 {
		t.Fatalf("entry=%#x progs=%d, want none", f.Entry, len(f.Progs))
	}

	wantSections := []struct {
		name  string
		typ   elf.SectionType
		flags elf.SectionFlag
		size  uint64
	}{
		{"", elf.SHT_NULL, 0, 0},
		{".text", elf.SHT_PROGBITS, elf.SHF_ALLOC | elf.SHF_EXECINSTR, 8},
		{".rodata", elf.SHT_PROGBITS, elf.SHF_ALLOC, 16},
		{".strtab", elf.SHT_STRTAB, 0, 16},
		{".symtab", elf.SHT_SYMTAB, 0, 96},
		{".shstrtab", elf.SHT_STRTAB, 0, 64},
	}
	if len(f.Sections) != len(wantSections) {
		t.Fatalf("got %d sections, want %d", len(f.Sections), len(wantSections))
	}
	for i, want := range wantSections {
		s := f.Sections[i]
		if s.Name != want.name || s.Type != want.typ || s.Flags != want.flags || s.Size != want.size {
			t.Errorf("section %d = {%q %v %v %d}, want {%q %v %v %d}",
				i, s.Name, s.Type, s.Flags, s.Size, want.name, want.typ, want.flags, want.size)
		}
	}

	text, err := f.Section(".text").Data()
	if err != nil {
		t.Fatalf("read .text: %v", err)
	}
	if !bytes.Equal(text, twoInstructionProgram().Bytes()) {
		t.Fatalf(".text=% x", text)
	}
	rodata, err := f.Section(".rodata").Data()
	if err != nil {
		t.Fatalf("read .rodata: %v", err)
	}
	if !bytes.Equal(rodata, make([]byte, 16)) {
		t.Fatalf(".rodata=% x, want zeros", rodata)
	}

	symtab := f.Section(".symtab")
	if symtab.Link != 3 || symtab.Info != 3 || symtab.Entsize != 24 {
		t.Fatalf(".symtab link=%d info=%d entsize=%d", symtab.Link, symtab.Info, symtab.Entsize)
	}
}

func TestRelocatableELFSymbols(t *testing.T) {
	obj, err := RelocatableELF(twoInstructionProgram())
	if err != nil {
		t.Fatalf("RelocatableELF failed: %v", err)
	}
	f, err := elf.NewFile(bytes.NewReader(obj))
	if err != nil {
		t.Fatalf("parse ELF: %v", err)
	}
	defer f.Close()

	// Symbols() drops the null entry.
	syms, err := f.Symbols()
	if err != nil {
		t.Fatalf("Symbols: %v", err)
	}
	if len(syms) != 3 {
		t.Fatalf("got %d symbols, want 3", len(syms))
	}
	want := []struct {
		name  string
		bind  elf.SymBind
		typ   elf.SymType
		shndx elf.SectionIndex
	}{
		{"", elf.STB_LOCAL, elf.STT_SECTION, 2},
		{"", elf.STB_LOCAL, elf.STT_SECTION, 1},
		{"_start", elf.STB_GLOBAL, elf.STT_NOTYPE, 1},
	}
	for i, w := range want {
		s := syms[i]
		if s.Name != w.name || elf.ST_BIND(s.Info) != w.bind || elf.ST_TYPE(s.Info) != w.typ || s.Section != w.shndx || s.Value != 0 {
			t.Errorf("symbol %d = %+v, want %+v", i, s, w)
		}
	}
}

func TestRelocatableELFEmptyProgram(t *testing.T) {
	obj, err := RelocatableELF(asm.NewProgram(nil))
	if err != nil {
		t.Fatalf("RelocatableELF failed: %v", err)
	}
	if got, want := len(obj), 640; got != want {
		t.Fatalf("object length=%d, want %d", got, want)
	}
	f, err := elf.NewFile(bytes.NewReader(obj))
	if err != nil {
		t.Fatalf("parse ELF: %v", err)
	}
	defer f.Close()
	if got := f.Section(".text").Size; got != 0 {
		t.Fatalf(".text size=%d, want 0", got)
	}
}

func TestWriteObjectMatchesRelocatableELF(t *testing.T) {
	prog := twoInstructionProgram()
	want, err := RelocatableELF(prog)
	if err != nil {
		t.Fatalf("RelocatableELF failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteObject(&buf, prog); err != nil {
		t.Fatalf("WriteObject failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatal("WriteObject and RelocatableELF disagree")
	}
}
