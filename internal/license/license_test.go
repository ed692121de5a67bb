package license

import "testing"

func TestParse(t *testing.T) {
	valid := []string{"BSD-3-Clause", "MIT", "Apache-2.0", "MPL-2.0", "ISC"}
	for _, id := range valid {
		l, err := Parse(id)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", id, err)
			continue
		}
		if l.String() != id {
			t.Errorf("String() = %q, want %q", l.String(), id)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	invalid := []string{"", "bsd-3-clause", "WTFPL", "Proprietary", "BSD 3 Clause"}
	for _, id := range invalid {
		if _, err := Parse(id); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", id)
		}
	}
}
