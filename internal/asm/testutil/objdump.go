package testutil

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

// DisasmLine is one instruction of "llvm-objdump -d --no-show-raw-insn"
// output for a relocatable object.
type DisasmLine struct {
	Section    string // section being disassembled, e.g. ".text"
	Symbol     string // label the instruction follows, e.g. "_start"
	Offset     uint64 // byte offset within Section
	Text       string
	Normalized string // whitespace collapsed, trailing comment removed
	Mnemonic   string
}

// Contains reports whether the normalized instruction text contains substr.
func (l DisasmLine) Contains(substr string) bool {
	return strings.Contains(l.Normalized, substr)
}

// DisassembleObject writes obj to a temporary file and runs tool over it.
// The test is skipped when the tool is not installed.
func DisassembleObject(t *testing.T, tool string, obj []byte, args ...string) []DisasmLine {
	t.Helper()

	toolPath, err := exec.LookPath(tool)
	if err != nil {
		t.Skipf("%s not found: %v", tool, err)
	}

	path := filepath.Join(t.TempDir(), "object.o")
	if err := os.WriteFile(path, obj, 0o644); err != nil {
		t.Fatalf("write temp object: %v", err)
	}

	output, err := exec.Command(toolPath, append(args, path)...).CombinedOutput()
	if err != nil {
		t.Fatalf("%s failed: %v\n\n%s", tool, err, output)
	}

	lines, err := parseObjdumpOutput(string(output))
	if err != nil {
		t.Fatalf("parse %s output: %v\n\n%s", tool, err, output)
	}
	if len(lines) == 0 {
		t.Fatalf("%s produced no instructions:\n%s", tool, output)
	}
	return lines
}

var (
	sectionHeader = regexp.MustCompile(`^Disassembly of section (\S+):$`)
	symbolHeader  = regexp.MustCompile(`^([0-9a-f]+) <([^>]+)>:$`)
	insnLine      = regexp.MustCompile(`^\s*([0-9a-f]+):\s+(\S.*)$`)
)

func parseObjdumpOutput(out string) ([]DisasmLine, error) {
	var (
		lines   []DisasmLine
		section string
		symbol  string
	)
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		raw := strings.TrimRight(scanner.Text(), " \t")
		if m := sectionHeader.FindStringSubmatch(raw); m != nil {
			section, symbol = m[1], ""
			continue
		}
		if m := symbolHeader.FindStringSubmatch(raw); m != nil {
			symbol = m[2]
			continue
		}
		m := insnLine.FindStringSubmatch(raw)
		if m == nil || section == "" {
			continue
		}
		off, err := strconv.ParseUint(m[1], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("offset %q: %w", m[1], err)
		}
		text := strings.TrimSpace(m[2])
		body := text
		if i := strings.Index(body, "//"); i >= 0 {
			body = body[:i]
		}
		fields := strings.Fields(body)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, DisasmLine{
			Section:    section,
			Symbol:     symbol,
			Offset:     off,
			Text:       text,
			Normalized: strings.Join(fields, " "),
			Mnemonic:   strings.ToLower(fields[0]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan output: %w", err)
	}
	return lines, nil
}
