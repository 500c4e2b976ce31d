package arm64

import (
	"errors"
	"fmt"
)

// Sentinel errors for encoding failures.
var (
	ErrUnknownMnemonic = errors.New("unknown mnemonic")
	ErrNoMatchingForm  = errors.New("no instruction form matches the operands")
)

// InputError reports a source file that could not be read.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// SyntaxError represents an error while parsing a source line.
type SyntaxError struct {
	Path string
	Line int // 1-indexed
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// EncodingError reports a statement that no rule could encode.
type EncodingError struct {
	Path     string
	Line     int
	Mnemonic string
	Operands []Operand
	Err      error // ErrUnknownMnemonic or ErrNoMatchingForm
}

func (e *EncodingError) Error() string {
	stmt := e.Mnemonic
	if len(e.Operands) > 0 {
		stmt += " " + formatOperands(e.Operands)
	}
	if e.Path == "" {
		return fmt.Sprintf("line %d: %q: %v", e.Line, stmt, e.Err)
	}
	return fmt.Sprintf("%s:%d: %q: %v", e.Path, e.Line, stmt, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
