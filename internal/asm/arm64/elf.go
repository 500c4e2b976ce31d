package arm64

import (
	"bufio"
	"bytes"
	"debug/elf"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tinyrange/a64as/internal/asm"
)

const (
	elfHeaderSize        = 64
	elfProgramHeaderSize = 56
	elfSectionHeaderSize = 64
	elfSymbolSize        = 24
	rodataSize           = 16
)

// Section indices of the emitted object.
const (
	sectionText = 1 + iota
	sectionRodata
	sectionStrtab
	sectionSymtab
	sectionShstrtab
	sectionCount
)

var (
	strtab   = padTo([]byte("\x00_start\x00"), 16)
	shstrtab = padTo([]byte("\x00.text\x00.rodata\x00.strtab\x00.symtab\x00.shstrtab\x00"), 64)
)

func padTo(b []byte, size int) []byte {
	return append(b, make([]byte, size-len(b))...)
}

// sectionName returns the offset of name in .shstrtab.
func sectionName(name string) uint32 {
	return uint32(bytes.Index(shstrtab, []byte("\x00"+name+"\x00")) + 1)
}

// objectLayout holds file offsets. Sections follow each other with no
// alignment padding.
type objectLayout struct {
	textSize uint64
	text     uint64
	rodata   uint64
	strtab   uint64
	symtab   uint64
	shstrtab uint64
	sections uint64
	size     uint64
}

func layoutObject(textSize int) objectLayout {
	var l objectLayout
	l.textSize = uint64(textSize)
	l.text = elfHeaderSize
	l.rodata = l.text + l.textSize
	l.strtab = l.rodata + rodataSize
	l.symtab = l.strtab + uint64(len(strtab))
	l.shstrtab = l.symtab + uint64(len(objectSymbols())*elfSymbolSize)
	l.sections = l.shstrtab + uint64(len(shstrtab))
	l.size = l.sections + sectionCount*elfSectionHeaderSize
	return l
}

// ObjectSize is the byte length of the object for a program of textSize bytes.
func ObjectSize(textSize int) int {
	return int(layoutObject(textSize).size)
}

func objectSymbols() []elf.Sym64 {
	sectionSym := elf.ST_INFO(elf.STB_LOCAL, elf.STT_SECTION)
	return []elf.Sym64{
		{},
		{Info: sectionSym, Shndx: sectionRodata},
		{Info: sectionSym, Shndx: sectionText},
		{Name: 1, Info: elf.ST_INFO(elf.STB_GLOBAL, elf.STT_NOTYPE), Shndx: sectionText},
	}
}

func objectHeader(l objectLayout) elf.Header64 {
	hdr := elf.Header64{
		Type:      uint16(elf.ET_REL),
		Machine:   uint16(elf.EM_AARCH64),
		Version:   uint32(elf.EV_CURRENT),
		Shoff:     l.sections,
		Ehsize:    elfHeaderSize,
		Phentsize: elfProgramHeaderSize,
		Shentsize: elfSectionHeaderSize,
		Shnum:     sectionCount,
		Shstrndx:  sectionShstrtab,
	}
	copy(hdr.Ident[:], elf.ELFMAG)
	hdr.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS64)
	hdr.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)
	return hdr
}

func objectSections(l objectLayout) []elf.Section64 {
	// .symtab links to .strtab; Info is the index of the first global symbol.
	return []elf.Section64{
		{},
		{
			Name:      sectionName(".text"),
			Type:      uint32(elf.SHT_PROGBITS),
			Flags:     uint64(elf.SHF_ALLOC | elf.SHF_EXECINSTR),
			Off:       l.text,
			Size:      l.textSize,
			Addralign: 1,
		},
		{
			Name:      sectionName(".rodata"),
			Type:      uint32(elf.SHT_PROGBITS),
			Flags:     uint64(elf.SHF_ALLOC),
			Off:       l.rodata,
			Size:      rodataSize,
			Addralign: 1,
		},
		{
			Name:      sectionName(".strtab"),
			Type:      uint32(elf.SHT_STRTAB),
			Off:       l.strtab,
			Size:      uint64(len(strtab)),
			Addralign: 1,
		},
		{
			Name:      sectionName(".symtab"),
			Type:      uint32(elf.SHT_SYMTAB),
			Off:       l.symtab,
			Size:      l.shstrtab - l.symtab,
			Link:      sectionStrtab,
			Info:      3,
			Addralign: 8,
			Entsize:   elfSymbolSize,
		},
		{
			Name:      sectionName(".shstrtab"),
			Type:      uint32(elf.SHT_STRTAB),
			Off:       l.shstrtab,
			Size:      uint64(len(shstrtab)),
			Addralign: 1,
		},
	}
}

// WriteObject serializes prog as an ELF64 relocatable object in one forward
// pass: header, .text, .rodata, .strtab, .symtab, .shstrtab, section headers.
func WriteObject(w io.Writer, prog asm.Program) error {
	l := layoutObject(prog.Len())
	hdr := objectHeader(l)
	parts := []any{
		&hdr,
		prog.Bytes(),
		make([]byte, rodataSize),
		strtab,
		objectSymbols(),
		shstrtab,
		objectSections(l),
	}

	bw := bufio.NewWriter(w)
	for _, part := range parts {
		if err := binary.Write(bw, binary.LittleEndian, part); err != nil {
			return fmt.Errorf("write object: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	return nil
}

// RelocatableELF returns the object for prog as a byte slice.
func RelocatableELF(prog asm.Program) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(ObjectSize(prog.Len()))
	if err := WriteObject(&buf, prog); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
