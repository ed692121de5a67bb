package outline

import (
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/elmkit/elmkit/internal/license"
	"github.com/elmkit/elmkit/internal/modname"
	"github.com/elmkit/elmkit/internal/pkgname"
	"github.com/elmkit/elmkit/internal/version"
)

// Field-level lengths checked during decode, counted in code points.
const (
	maxSummaryLen = 80
	maxHeaderLen  = 20
)

// Decode parses raw manifest bytes into an Outline. Decoding is fail-fast:
// the first structural problem aborts the whole decode and comes back as a
// *DecodeError. Fields other than the declared ones are ignored.
//
// Object key order matters for the sectioned form of "exposed-modules", so
// the decoder walks the document with gjson, which iterates object members
// in document order.
func Decode(data []byte) (Outline, error) {
	if !gjson.ValidBytes(data) {
		return nil, &DecodeError{Problem: ProblemSyntax}
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, &DecodeError{Problem: ProblemExpecting}
	}
	kind := doc.Get("type")
	if kind.Type != gjson.String {
		return nil, &DecodeError{Problem: ProblemExpecting, Field: "type"}
	}
	switch kind.String() {
	case TypeApplication:
		return decodeApp(doc)
	case TypePackage:
		return decodePkg(doc)
	default:
		return nil, &DecodeError{Problem: ProblemBadType, Field: "type", Value: kind.String()}
	}
}

func decodeApp(doc gjson.Result) (*AppOutline, error) {
	elmVersion, err := decodeVersionField(doc, "elm-version")
	if err != nil {
		return nil, err
	}
	srcDirs, err := decodeSourceDirs(doc)
	if err != nil {
		return nil, err
	}
	direct, err := decodePinned(doc, "dependencies.direct")
	if err != nil {
		return nil, err
	}
	indirect, err := decodePinned(doc, "dependencies.indirect")
	if err != nil {
		return nil, err
	}
	testDirect, err := decodePinned(doc, "test-dependencies.direct")
	if err != nil {
		return nil, err
	}
	testIndirect, err := decodePinned(doc, "test-dependencies.indirect")
	if err != nil {
		return nil, err
	}
	return &AppOutline{
		ElmVersion:   elmVersion,
		SourceDirs:   srcDirs,
		Direct:       direct,
		Indirect:     indirect,
		TestDirect:   testDirect,
		TestIndirect: testIndirect,
	}, nil
}

func decodePkg(doc gjson.Result) (*PkgOutline, error) {
	nameStr, derr := requireString(doc, "name")
	if derr != nil {
		return nil, derr
	}
	name, err := pkgname.Parse(nameStr)
	if err != nil {
		return nil, &DecodeError{Problem: ProblemBadPackageName, Field: "name", Value: nameStr, Err: err}
	}
	summary, derr := requireString(doc, "summary")
	if derr != nil {
		return nil, derr
	}
	if utf8.RuneCountInString(summary) >= maxSummaryLen {
		return nil, &DecodeError{Problem: ProblemSummaryTooLong, Field: "summary"}
	}
	licenseStr, derr := requireString(doc, "license")
	if derr != nil {
		return nil, derr
	}
	lic, err := license.Parse(licenseStr)
	if err != nil {
		return nil, &DecodeError{Problem: ProblemBadLicense, Field: "license", Value: licenseStr, Err: err}
	}
	pkgVersion, err := decodeVersionField(doc, "version")
	if err != nil {
		return nil, err
	}
	exposed, err := decodeExposed(doc.Get("exposed-modules"))
	if err != nil {
		return nil, err
	}
	deps, err := decodeRanged(doc, "dependencies")
	if err != nil {
		return nil, err
	}
	testDeps, err := decodeRanged(doc, "test-dependencies")
	if err != nil {
		return nil, err
	}
	elmConstraint, err := decodeConstraintField(doc, "elm-version")
	if err != nil {
		return nil, err
	}
	return &PkgOutline{
		Name:       name,
		Summary:    summary,
		License:    lic,
		Version:    pkgVersion,
		Exposed:    exposed,
		Deps:       deps,
		TestDeps:   testDeps,
		ElmVersion: elmConstraint,
	}, nil
}

// decodeExposed applies the ordered-alternative strategy: a JSON array is
// decoded as a flat list, a JSON object as named sections, anything else
// fails. Selection is structural only; a bad module name inside the chosen
// alternative is a final error, not a reason to try the other shape.
func decodeExposed(val gjson.Result) (Exposed, error) {
	switch {
	case val.IsArray():
		modules, err := decodeModuleList(val, "exposed-modules")
		if err != nil {
			return nil, err
		}
		return ExposedList(modules), nil
	case val.IsObject():
		sections := ExposedSections{}
		var ferr error
		val.ForEach(func(key, value gjson.Result) bool {
			header := key.String()
			if utf8.RuneCountInString(header) >= maxHeaderLen {
				ferr = &DecodeError{Problem: ProblemModuleHeaderTooLong, Field: "exposed-modules", Value: header}
				return false
			}
			if !value.IsArray() {
				ferr = &DecodeError{Problem: ProblemExpecting, Field: "exposed-modules." + header}
				return false
			}
			modules, err := decodeModuleList(value, "exposed-modules."+header)
			if err != nil {
				ferr = err
				return false
			}
			sections = append(sections, Section{Header: header, Modules: modules})
			return true
		})
		if ferr != nil {
			return nil, ferr
		}
		return sections, nil
	default:
		return nil, &DecodeError{Problem: ProblemExpecting, Field: "exposed-modules"}
	}
}

// decodeModuleList decodes an array of module names, preserving order.
func decodeModuleList(val gjson.Result, field string) ([]modname.Name, error) {
	modules := []modname.Name{}
	var ferr error
	val.ForEach(func(_, elem gjson.Result) bool {
		if elem.Type != gjson.String {
			ferr = &DecodeError{Problem: ProblemExpecting, Field: field}
			return false
		}
		name, err := modname.Parse(elem.String())
		if err != nil {
			ferr = &DecodeError{Problem: ProblemBadModuleName, Field: field, Value: elem.String(), Err: err}
			return false
		}
		modules = append(modules, name)
		return true
	})
	if ferr != nil {
		return nil, ferr
	}
	return modules, nil
}

func decodeSourceDirs(doc gjson.Result) (SourceDirs, error) {
	val := doc.Get("source-directories")
	if !val.IsArray() {
		return SourceDirs{}, &DecodeError{Problem: ProblemExpecting, Field: "source-directories"}
	}
	var dirs []string
	var ferr error
	val.ForEach(func(_, elem gjson.Result) bool {
		if elem.Type != gjson.String {
			ferr = &DecodeError{Problem: ProblemExpecting, Field: "source-directories"}
			return false
		}
		dirs = append(dirs, elem.String())
		return true
	})
	if ferr != nil {
		return SourceDirs{}, ferr
	}
	if len(dirs) == 0 {
		return SourceDirs{}, &DecodeError{Problem: ProblemNoSourceDirs, Field: "source-directories"}
	}
	srcDirs, err := NewSourceDirs(dirs)
	if err != nil {
		return SourceDirs{}, &DecodeError{Problem: ProblemNoSourceDirs, Field: "source-directories", Err: err}
	}
	return srcDirs, nil
}

// decodePinned decodes a dependency map valued by exact versions. Keys are
// validated against the package name grammar; duplicate keys collapse with
// the last occurrence winning.
func decodePinned(doc gjson.Result, field string) (Pinned, error) {
	val := doc.Get(field)
	if !val.IsObject() {
		return nil, &DecodeError{Problem: ProblemExpecting, Field: field}
	}
	deps := Pinned{}
	var ferr error
	val.ForEach(func(key, value gjson.Result) bool {
		name, err := pkgname.Parse(key.String())
		if err != nil {
			ferr = &DecodeError{Problem: ProblemBadDependencyName, Field: field, Value: key.String(), Err: err}
			return false
		}
		if value.Type != gjson.String {
			ferr = &DecodeError{Problem: ProblemExpecting, Field: field + "." + key.String()}
			return false
		}
		v, err := version.Parse(value.String())
		if err != nil {
			ferr = &DecodeError{Problem: ProblemBadVersion, Field: field + "." + key.String(), Value: value.String(), Err: err}
			return false
		}
		deps[name] = v
		return true
	})
	if ferr != nil {
		return nil, ferr
	}
	return deps, nil
}

// decodeRanged decodes a dependency map valued by version constraints.
func decodeRanged(doc gjson.Result, field string) (Ranged, error) {
	val := doc.Get(field)
	if !val.IsObject() {
		return nil, &DecodeError{Problem: ProblemExpecting, Field: field}
	}
	deps := Ranged{}
	var ferr error
	val.ForEach(func(key, value gjson.Result) bool {
		name, err := pkgname.Parse(key.String())
		if err != nil {
			ferr = &DecodeError{Problem: ProblemBadDependencyName, Field: field, Value: key.String(), Err: err}
			return false
		}
		if value.Type != gjson.String {
			ferr = &DecodeError{Problem: ProblemExpecting, Field: field + "." + key.String()}
			return false
		}
		c, err := version.ParseConstraint(value.String())
		if err != nil {
			ferr = &DecodeError{Problem: ProblemBadConstraint, Field: field + "." + key.String(), Value: value.String(), Err: err}
			return false
		}
		deps[name] = c
		return true
	})
	if ferr != nil {
		return nil, ferr
	}
	return deps, nil
}

func decodeVersionField(doc gjson.Result, field string) (version.Version, error) {
	s, derr := requireString(doc, field)
	if derr != nil {
		return version.Version{}, derr
	}
	v, err := version.Parse(s)
	if err != nil {
		return version.Version{}, &DecodeError{Problem: ProblemBadVersion, Field: field, Value: s, Err: err}
	}
	return v, nil
}

func decodeConstraintField(doc gjson.Result, field string) (version.Constraint, error) {
	s, derr := requireString(doc, field)
	if derr != nil {
		return version.Constraint{}, derr
	}
	c, err := version.ParseConstraint(s)
	if err != nil {
		return version.Constraint{}, &DecodeError{Problem: ProblemBadConstraint, Field: field, Value: s, Err: err}
	}
	return c, nil
}

func requireString(doc gjson.Result, field string) (string, *DecodeError) {
	val := doc.Get(field)
	if val.Type != gjson.String {
		return "", &DecodeError{Problem: ProblemExpecting, Field: field}
	}
	return val.String(), nil
}
