// Package license validates manifest license fields against the embedded
// list of OSI-approved SPDX identifiers.
package license

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/elmkit/elmkit/internal/bincode"
)

//go:embed osi_approved.txt
var rawIDs string

var (
	once sync.Once
	ids  map[string]bool
)

// License is a validated SPDX license identifier.
type License string

// BSD3 is the default license suggested for new packages.
const BSD3 License = "BSD-3-Clause"

func load() {
	once.Do(func() {
		ids = make(map[string]bool)
		for _, line := range strings.Split(rawIDs, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				ids[line] = true
			}
		}
	})
}

// Parse validates s as an OSI-approved SPDX identifier.
func Parse(s string) (License, error) {
	load()
	if !ids[s] {
		return "", fmt.Errorf("%q is not an OSI-approved SPDX license identifier", s)
	}
	return License(s), nil
}

func (l License) String() string { return string(l) }

// EncodeBinary writes l to the cache encoding.
func (l License) EncodeBinary(w *bincode.Writer) {
	w.String(string(l))
}

// DecodeBinary reads a License from the cache encoding.
func DecodeBinary(r *bincode.Reader) License {
	return License(r.String())
}
