package pkgname

import (
	"testing"

	"github.com/elmkit/elmkit/internal/bincode"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		author  string
		project string
	}{
		{"elm/core", "elm", "core"},
		{"elm-community/list-extra", "elm-community", "list-extra"},
		{"Author99/project-2", "Author99", "project-2"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if n.Author != tt.author || n.Project != tt.project {
				t.Errorf("Parse(%q) = %+v", tt.input, n)
			}
			if n.String() != tt.input {
				t.Errorf("String() = %q, want %q", n.String(), tt.input)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"not a name",
		"noslash",
		"a/b/c",
		"/project",
		"author/",
		"-author/project",
		"author-/project",
		"au--thor/project",
		"author/Project",
		"author/1project",
		"author/pro--ject",
		"author/project-",
		"author/pro_ject",
	}
	for _, input := range inputs {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		}
	}
}

func TestName_Compare(t *testing.T) {
	a, _ := Parse("aaa/zzz")
	b, _ := Parse("bbb/aaa")
	if a.Compare(b) >= 0 {
		t.Errorf("Compare(%s, %s) = %d, want negative", a, b, a.Compare(b))
	}
	if b.Compare(b) != 0 {
		t.Errorf("Compare with itself should be 0")
	}
}

func TestName_BinaryRoundTrip(t *testing.T) {
	n, err := Parse("elm-community/list-extra")
	if err != nil {
		t.Fatal(err)
	}
	var w bincode.Writer
	n.EncodeBinary(&w)
	r := bincode.NewReader(w.Bytes())
	if got := DecodeBinary(r); got != n {
		t.Errorf("binary round trip = %+v, want %+v", got, n)
	}
	if !r.Done() {
		t.Error("trailing bytes after decode")
	}
}
