package testutil

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"testing"
)

// LLVMFeatures are the target features enabled when assembling reference
// encodings.
const LLVMFeatures = "+lse,+rcpc,+crc,+v8.4a"

// EncodeWithLLVM assembles each source line with llvm-mc and returns the
// instruction words in order. The test is skipped when llvm-mc is not
// installed.
func EncodeWithLLVM(t *testing.T, lines []string) []uint32 {
	t.Helper()

	toolPath, err := exec.LookPath("llvm-mc")
	if err != nil {
		t.Skipf("llvm-mc not found: %v", err)
	}

	cmd := exec.Command(toolPath, "-triple=aarch64", "-mattr="+LLVMFeatures, "-show-encoding")
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("llvm-mc failed: %v\n\n%s", err, output)
	}

	words, err := parseEncodings(string(output))
	if err != nil {
		t.Fatalf("parse llvm-mc output: %v", err)
	}
	if len(words) != len(lines) {
		t.Fatalf("llvm-mc produced %d encodings for %d lines:\n%s", len(words), len(lines), output)
	}
	return words
}

// parseEncodings extracts the "// encoding: [0x..,..]" annotations.
func parseEncodings(out string) ([]uint32, error) {
	const marker = "encoding: ["
	scanner := bufio.NewScanner(strings.NewReader(out))
	var words []uint32
	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.Index(line, marker)
		if idx == -1 {
			continue
		}
		rest := line[idx+len(marker):]
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return nil, fmt.Errorf("unterminated encoding in %q", line)
		}
		parts := strings.Split(rest[:end], ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("encoding of %d bytes in %q", len(parts), line)
		}
		var buf [4]byte
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 0, 8)
			if err != nil {
				return nil, fmt.Errorf("byte %q in %q: %w", p, line, err)
			}
			buf[i] = byte(v)
		}
		words = append(words, binary.LittleEndian.Uint32(buf[:]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return words, nil
}
