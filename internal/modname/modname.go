// Package modname implements the module name grammar: one or more dot
// separated segments, each starting with an upper-case letter followed by
// letters, digits, or underscores (e.g. "Json.Decode").
package modname

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/elmkit/elmkit/internal/bincode"
)

// Name is a validated module name.
type Name string

// Parse validates a module name string.
func Parse(s string) (Name, error) {
	if s == "" {
		return "", fmt.Errorf("module name cannot be empty")
	}
	for _, segment := range strings.Split(s, ".") {
		if err := checkSegment(segment); err != nil {
			return "", fmt.Errorf("bad module name %q: %w", s, err)
		}
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

func checkSegment(segment string) error {
	if segment == "" {
		return fmt.Errorf("empty segment")
	}
	for i, r := range segment {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return fmt.Errorf("segment %q must start with an upper-case letter", segment)
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return fmt.Errorf("segment %q cannot contain %q", segment, r)
		}
	}
	return nil
}

// EncodeBinary writes n to the cache encoding.
func (n Name) EncodeBinary(w *bincode.Writer) {
	w.String(string(n))
}

// DecodeBinary reads a Name from the cache encoding.
func DecodeBinary(r *bincode.Reader) Name {
	return Name(r.String())
}
