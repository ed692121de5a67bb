package outline

import (
	"fmt"

	"github.com/elmkit/elmkit/internal/license"
	"github.com/elmkit/elmkit/internal/modname"
	"github.com/elmkit/elmkit/internal/pkgname"
	"github.com/elmkit/elmkit/internal/version"
)

// FileName is the conventional manifest file name under a project root.
const FileName = "elm.json"

// Type constants for the "type" discriminator field.
const (
	TypeApplication = "application"
	TypePackage     = "package"
)

// Outline is a parsed project manifest: either *AppOutline or *PkgOutline.
type Outline interface {
	outline()
}

// Pinned maps package names to exact versions.
type Pinned map[pkgname.Name]version.Version

// Ranged maps package names to version constraints.
type Ranged map[pkgname.Name]version.Constraint

// AppOutline is the manifest of an application project. Every dependency is
// pinned to an exact version, split into direct/indirect for normal and test
// use.
type AppOutline struct {
	ElmVersion   version.Version
	SourceDirs   SourceDirs
	Direct       Pinned
	Indirect     Pinned
	TestDirect   Pinned
	TestIndirect Pinned
}

// PkgOutline is the manifest of a package (library) project. Dependencies
// carry version constraints rather than pins.
type PkgOutline struct {
	Name       pkgname.Name
	Summary    string
	License    license.License
	Version    version.Version
	Exposed    Exposed
	Deps       Ranged
	TestDeps   Ranged
	ElmVersion version.Constraint
}

func (*AppOutline) outline() {}
func (*PkgOutline) outline() {}

// SourceDirs is an ordered, never-empty list of source directories. Order is
// the order declared in the manifest and is preserved verbatim.
type SourceDirs struct {
	head string
	tail []string
}

// NewSourceDirs builds a SourceDirs from at least one directory.
func NewSourceDirs(dirs []string) (SourceDirs, error) {
	if len(dirs) == 0 {
		return SourceDirs{}, fmt.Errorf("need at least one source directory")
	}
	return SourceDirs{head: dirs[0], tail: append([]string(nil), dirs[1:]...)}, nil
}

// All returns the directories in declared order. The result has at least one
// element and is safe for the caller to modify.
func (s SourceDirs) All() []string {
	return append([]string{s.head}, s.tail...)
}

// Exposed is the public module surface of a package: either a flat
// ExposedList or an ExposedSections grouping under named headers.
type Exposed interface {
	exposed()
}

// ExposedList is a flat ordered list of exposed module names.
type ExposedList []modname.Name

// Section is one named group of exposed modules. Header order across
// sections and module order within a section both follow the manifest.
type Section struct {
	Header  string
	Modules []modname.Name
}

// ExposedSections is an ordered list of named module sections.
type ExposedSections []Section

func (ExposedList) exposed()     {}
func (ExposedSections) exposed() {}

// Flatten returns the exposed module names as one flat list. Lists come back
// unchanged; sections are concatenated in section order with headers
// discarded.
func Flatten(e Exposed) []modname.Name {
	switch v := e.(type) {
	case ExposedList:
		return v
	case ExposedSections:
		var all []modname.Name
		for _, section := range v {
			all = append(all, section.Modules...)
		}
		return all
	default:
		return nil
	}
}
