package arm64

import (
	"io"
	"log/slog"
	"os"

	"github.com/tinyrange/a64as/internal/asm"
)

// Assembler turns A64 source text into relocatable objects. The table is
// never modified, so one Assembler may be shared.
type Assembler struct {
	table  *Table
	logger *slog.Logger
}

// NewAssembler returns an assembler using table. A nil logger selects
// slog.Default().
func NewAssembler(table *Table, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{table: table, logger: logger}
}

// Assembly is the result of assembling one source file.
type Assembly struct {
	Path    string
	Program asm.Program
	Listing []ListingEntry
}

// Assemble parses and encodes src statement by statement. It stops at the
// first syntax or encoding error and returns no partial result.
func (a *Assembler) Assemble(path string, src []byte) (*Assembly, error) {
	ctx := newContext(path, a.table, a.logger)
	p := NewParser(path, src)
	for {
		stmt, ok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if err := stmt.Emit(ctx); err != nil {
			return nil, err
		}
	}
	prog := ctx.finalize()
	a.logger.Debug("assembled",
		slog.String("path", path),
		slog.Int("instructions", prog.Count()))
	return &Assembly{Path: path, Program: prog, Listing: ctx.listing}, nil
}

// AssembleFile reads path and assembles its contents.
func (a *Assembler) AssembleFile(path string) (*Assembly, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return a.Assemble(path, src)
}

// WriteObject writes the relocatable object for the assembled program.
func (a *Assembly) WriteObject(w io.Writer) error {
	return WriteObject(w, a.Program)
}
