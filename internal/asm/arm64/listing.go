package arm64

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Hex32 is an instruction word written as a 0x-prefixed hex string in YAML.
type Hex32 uint32

// MarshalYAML implements yaml.Marshaler for Hex32.
func (h Hex32) MarshalYAML() (any, error) {
	return fmt.Sprintf("0x%08x", uint32(h)), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Hex32.
func (h *Hex32) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return fmt.Errorf("invalid instruction word %q: %w", s, err)
	}
	*h = Hex32(v)
	return nil
}

// ListingEntry ties one emitted word to its source line.
type ListingEntry struct {
	Offset int    `yaml:"offset"`
	Line   int    `yaml:"line"`
	Source string `yaml:"source"`
	Word   Hex32  `yaml:"word"`
}

// Listing is the YAML document written by WriteListing.
type Listing struct {
	File         string         `yaml:"file"`
	Size         int            `yaml:"size"`
	Instructions []ListingEntry `yaml:"instructions"`
}

// WriteListing writes a YAML listing of the assembled instructions.
func (a *Assembly) WriteListing(w io.Writer) error {
	doc := Listing{
		File:         a.Path,
		Size:         a.Program.Len(),
		Instructions: a.Listing,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode listing: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close listing: %w", err)
	}
	return nil
}

// ReadListing parses a listing produced by WriteListing.
func ReadListing(data []byte) (Listing, error) {
	var doc Listing
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Listing{}, fmt.Errorf("parse listing: %w", err)
	}
	return doc, nil
}
