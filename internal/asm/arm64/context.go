package arm64

import (
	"fmt"
	"log/slog"

	"github.com/tinyrange/a64as/internal/asm"
)

// Context collects the instruction words of one source file in program order.
type Context struct {
	path    string
	table   *Table
	logger  *slog.Logger
	words   []uint32
	listing []ListingEntry
}

var (
	_ asm.Context  = (*Context)(nil)
	_ asm.Fragment = Statement{}
)

func newContext(path string, table *Table, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		path:   path,
		table:  table,
		logger: logger,
	}
}

func requireContext(ctx asm.Context) (*Context, error) {
	if c, ok := ctx.(*Context); ok {
		return c, nil
	}
	return nil, fmt.Errorf("arm64 asm: unsupported context %T", ctx)
}

func (c *Context) EmitWord(word uint32) {
	c.emit32(word)
}

// emit32 appends a word and returns its byte offset in .text.
func (c *Context) emit32(word uint32) int {
	pos := 4 * len(c.words)
	c.words = append(c.words, word)
	return pos
}

func (c *Context) finalize() asm.Program {
	return asm.NewProgram(c.words)
}

// Emit encodes the statement with the context's table and appends the word.
func (s Statement) Emit(ctx asm.Context) error {
	c, err := requireContext(ctx)
	if err != nil {
		return err
	}
	if c.table == nil {
		return fmt.Errorf("arm64 asm: context has no mnemonic table")
	}
	word, err := c.table.Encode(s.Mnemonic, s.Operands)
	if err != nil {
		return &EncodingError{
			Path:     c.path,
			Line:     s.Line,
			Mnemonic: s.Mnemonic,
			Operands: s.Operands,
			Err:      err,
		}
	}
	off := c.emit32(word)
	c.listing = append(c.listing, ListingEntry{
		Offset: off,
		Line:   s.Line,
		Source: s.Text,
		Word:   Hex32(word),
	})
	c.logger.Debug("encoded instruction",
		slog.Int("line", s.Line),
		slog.String("statement", s.String()),
		slog.String("word", fmt.Sprintf("%#08x", word)))
	return nil
}
