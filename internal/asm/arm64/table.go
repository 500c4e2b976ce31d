package arm64

import (
	"fmt"
	"slices"
	"strings"
)

// Table maps mnemonics to their ordered encoding rules. It is filled once by
// NewTable and is read-only afterwards, so one Table may be shared freely.
type Table struct {
	rules map[string][]rule
}

// NewTable builds the mnemonic table.
func NewTable() *Table {
	t := &Table{rules: make(map[string][]rule, 512)}
	t.addBase()
	t.addLogical()
	t.addBitfield()
	t.addSystem()
	t.addLoadStore()
	t.addOrdered()
	t.addAtomic()
	return t
}

func (t *Table) add(mnemonic string, rules ...rule) {
	if _, exists := t.rules[mnemonic]; exists {
		panic(fmt.Sprintf("arm64 asm: mnemonic %q registered twice", mnemonic))
	}
	if len(rules) == 0 {
		panic(fmt.Sprintf("arm64 asm: mnemonic %q has no rules", mnemonic))
	}
	t.rules[mnemonic] = rules
}

// Has reports whether the mnemonic is known.
func (t *Table) Has(mnemonic string) bool {
	_, ok := t.rules[mnemonic]
	return ok
}

// Mnemonics returns all known mnemonics in sorted order.
func (t *Table) Mnemonics() []string {
	out := make([]string, 0, len(t.rules))
	for name := range t.rules {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Encode selects the first rule whose pattern matches ops and returns the
// resulting instruction word.
func (t *Table) Encode(mnemonic string, ops []Operand) (uint32, error) {
	rules, ok := t.rules[mnemonic]
	if !ok {
		return 0, ErrUnknownMnemonic
	}
	for _, r := range rules {
		if r.pattern.Match(ops) {
			return r.encode(ops), nil
		}
	}
	return 0, ErrNoMatchingForm
}

// formatOperands renders ops in source syntax.
func formatOperands(ops []Operand) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, ", ")
}
