// Package pkgname implements the "author/project" package identity grammar
// used for dependency keys and package names in a project manifest.
package pkgname

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/elmkit/elmkit/internal/bincode"
)

// Name identifies a package as author/project.
type Name struct {
	Author  string
	Project string
}

// Parse validates a package identity string.
//
// The author part may contain letters, digits, and dashes, with no leading,
// trailing, or doubled dash. The project part is restricted to lower-case
// letters, digits, and dashes, must start with a letter, and likewise rejects
// leading, trailing, or doubled dashes.
func Parse(s string) (Name, error) {
	author, project, ok := strings.Cut(s, "/")
	if !ok || strings.Contains(project, "/") {
		return Name{}, fmt.Errorf("expecting a package name like %q", "author/project")
	}
	if err := checkAuthor(author); err != nil {
		return Name{}, fmt.Errorf("bad author in %q: %w", s, err)
	}
	if err := checkProject(project); err != nil {
		return Name{}, fmt.Errorf("bad project in %q: %w", s, err)
	}
	return Name{Author: author, Project: project}, nil
}

func (n Name) String() string {
	return n.Author + "/" + n.Project
}

// Compare orders names by their canonical string form.
func (n Name) Compare(o Name) int {
	return strings.Compare(n.String(), o.String())
}

func checkAuthor(author string) error {
	if author == "" {
		return fmt.Errorf("author name cannot be empty")
	}
	if strings.HasPrefix(author, "-") || strings.HasSuffix(author, "-") {
		return fmt.Errorf("author name cannot start or end with a dash")
	}
	if strings.Contains(author, "--") {
		return fmt.Errorf("author name cannot contain a double dash")
	}
	for _, r := range author {
		if !isAlphaNum(r) && r != '-' {
			return fmt.Errorf("author name cannot contain %q", r)
		}
	}
	return nil
}

func checkProject(project string) error {
	if project == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	for _, r := range project {
		if unicode.IsUpper(r) {
			return fmt.Errorf("project name must be all lower case")
		}
		if !isAlphaNum(r) && r != '-' {
			return fmt.Errorf("project name cannot contain %q", r)
		}
	}
	if !unicode.IsLetter(rune(project[0])) {
		return fmt.Errorf("project name must start with a letter")
	}
	if strings.HasSuffix(project, "-") {
		return fmt.Errorf("project name cannot end with a dash")
	}
	if strings.Contains(project, "--") {
		return fmt.Errorf("project name cannot contain a double dash")
	}
	return nil
}

func isAlphaNum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// EncodeBinary writes n to the cache encoding.
func (n Name) EncodeBinary(w *bincode.Writer) {
	w.String(n.Author)
	w.String(n.Project)
}

// DecodeBinary reads a Name from the cache encoding.
func DecodeBinary(r *bincode.Reader) Name {
	author := r.String()
	project := r.String()
	return Name{Author: author, Project: project}
}
