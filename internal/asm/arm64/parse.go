package arm64

import (
	"fmt"
	"strings"
)

// MaxOperands is the largest operand count a statement may carry.
const MaxOperands = 5

// Statement is one parsed source line.
type Statement struct {
	Line     int
	Text     string
	Mnemonic string
	Operands []Operand
}

func (s Statement) String() string {
	if len(s.Operands) == 0 {
		return s.Mnemonic
	}
	return s.Mnemonic + " " + formatOperands(s.Operands)
}

// Parser reads statements from source text one at a time.
type Parser struct {
	lex   *lexer
	lines []string
	tok   token
	err   error
}

func NewParser(path string, src []byte) *Parser {
	p := &Parser{
		lex:   newLexer(path, src),
		lines: strings.Split(string(src), "\n"),
	}
	p.advance()
	return p
}

// Parse returns every statement in src, stopping at the first error.
func Parse(path string, src []byte) ([]Statement, error) {
	p := NewParser(path, src)
	var out []Statement
	for {
		stmt, ok, err := p.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, stmt)
	}
}

func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	tok, err := p.lex.next()
	if err != nil {
		p.err = err
		p.tok = token{kind: tokEOF, line: p.lex.line}
		return
	}
	p.tok = tok
}

func (p *Parser) errorf(format string, args ...any) error {
	if p.err != nil {
		return p.err
	}
	return &SyntaxError{Path: p.lex.path, Line: p.tok.line, Msg: fmt.Sprintf(format, args...)}
}

// Next returns the next statement. It reports false once the input is
// exhausted. Blank and comment-only lines are skipped.
func (p *Parser) Next() (Statement, bool, error) {
	for p.tok.kind == tokNewline {
		p.advance()
	}
	if p.err != nil {
		return Statement{}, false, p.err
	}
	if p.tok.kind == tokEOF {
		return Statement{}, false, nil
	}
	if p.tok.kind != tokIdent {
		return Statement{}, false, p.errorf("expected mnemonic, found %s", p.tok.describe())
	}
	stmt := Statement{
		Line:     p.tok.line,
		Mnemonic: p.tok.text,
	}
	if stmt.Line-1 < len(p.lines) {
		stmt.Text = strings.TrimSpace(p.lines[stmt.Line-1])
	}
	p.advance()

	if !p.atEndOfStatement() {
		for {
			op, err := p.operand()
			if err != nil {
				return Statement{}, false, err
			}
			stmt.Operands = append(stmt.Operands, op)
			if p.tok.kind != tokComma {
				break
			}
			if len(stmt.Operands) == MaxOperands {
				return Statement{}, false, p.errorf("too many operands (max %d)", MaxOperands)
			}
			p.advance()
		}
	}
	if !p.atEndOfStatement() {
		return Statement{}, false, p.errorf("expected end of line, found %s", p.tok.describe())
	}
	if p.tok.kind == tokNewline {
		p.advance()
	}
	return stmt, true, nil
}

func (p *Parser) atEndOfStatement() bool {
	return p.err == nil && (p.tok.kind == tokNewline || p.tok.kind == tokEOF)
}

func (p *Parser) operand() (Operand, error) {
	switch p.tok.kind {
	case tokHash:
		v, err := p.number()
		if err != nil {
			return nil, err
		}
		return Immediate{Value: v}, nil
	case tokLBracket:
		return p.memory()
	case tokIdent:
		return p.named()
	}
	return nil, p.errorf("expected operand, found %s", p.tok.describe())
}

// number parses "#" followed by an optionally negative literal.
func (p *Parser) number() (int64, error) {
	if p.tok.kind != tokHash {
		return 0, p.errorf("expected '#', found %s", p.tok.describe())
	}
	p.advance()
	negative := false
	if p.tok.kind == tokMinus {
		negative = true
		p.advance()
	}
	if p.tok.kind != tokNumber {
		return 0, p.errorf("malformed numeric literal: found %s", p.tok.describe())
	}
	v := p.tok.value
	p.advance()
	if negative {
		v = -v
	}
	return v, nil
}

// amount parses the optional "#n" after a shift or extend name.
func (p *Parser) amount() (int64, error) {
	if p.tok.kind != tokHash {
		return 0, nil
	}
	v, err := p.number()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, p.errorf("negative shift amount %d", v)
	}
	return v, nil
}

func (p *Parser) named() (Operand, error) {
	name := p.tok.text
	if r, ok := lookupRegister(name); ok {
		p.advance()
		return r, nil
	}
	if kind, ok := shiftNames[name]; ok {
		p.advance()
		n, err := p.amount()
		if err != nil {
			return nil, err
		}
		return Shift{Kind: kind, Amount: n}, nil
	}
	if kind, ok := extendNames[name]; ok {
		p.advance()
		n, err := p.amount()
		if err != nil {
			return nil, err
		}
		return Extend{Kind: kind, Amount: n}, nil
	}
	if c, ok := lookupCond(name); ok {
		p.advance()
		return Condition{Code: c}, nil
	}
	return nil, p.errorf("unknown identifier %q", name)
}

func (p *Parser) expectRegister(what string) (Register, error) {
	if p.tok.kind == tokIdent {
		if r, ok := lookupRegister(p.tok.text); ok {
			p.advance()
			return r, nil
		}
	}
	return Register{}, p.errorf("expected %s register, found %s", what, p.tok.describe())
}

func (p *Parser) memory() (Operand, error) {
	p.advance() // '['
	base, err := p.expectRegister("base")
	if err != nil {
		return nil, err
	}
	m := Memory{Mode: BaseOnly, Base: base}
	if p.tok.kind == tokComma {
		p.advance()
		switch p.tok.kind {
		case tokHash:
			v, err := p.number()
			if err != nil {
				return nil, err
			}
			m.Mode = BaseImmediateOffset
			m.Offset = Immediate{Value: v}
		case tokIdent:
			idx, err := p.expectRegister("offset")
			if err != nil {
				return nil, err
			}
			m.Mode = BaseRegisterOffset
			m.Offset = idx
			if p.tok.kind == tokComma {
				p.advance()
				var scaled bool
				m.Extend, scaled, err = p.indexExtend()
				if err != nil {
					return nil, err
				}
				m.Extended = true
				m.Scaled = scaled
			}
		default:
			return nil, p.errorf("expected offset, found %s", p.tok.describe())
		}
	}
	if p.tok.kind != tokRBracket {
		return nil, p.errorf("missing ']' in memory operand, found %s", p.tok.describe())
	}
	p.advance()
	if p.tok.kind == tokBang {
		if m.Mode == BaseRegisterOffset {
			return nil, p.errorf("misplaced '!' after register offset")
		}
		p.advance()
		if m.Offset == nil {
			m.Offset = Immediate{}
		}
		m.Mode = BaseImmediateOffsetPreIndexed
	}
	return m, nil
}

// indexExtend parses the extend of a register offset. "lsl" stands for the
// full-width zero extend. The flag reports whether an amount was written.
func (p *Parser) indexExtend() (Extend, bool, error) {
	if p.tok.kind != tokIdent {
		return Extend{}, false, p.errorf("expected extend, found %s", p.tok.describe())
	}
	kind, ok := extendNames[p.tok.text]
	if !ok {
		if p.tok.text != "lsl" {
			return Extend{}, false, p.errorf("expected extend, found %s", p.tok.describe())
		}
		kind = UXTX
	}
	p.advance()
	scaled := p.tok.kind == tokHash
	n, err := p.amount()
	if err != nil {
		return Extend{}, false, err
	}
	return Extend{Kind: kind, Amount: n}, scaled, nil
}
