package outline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/elmkit/elmkit/internal/modname"
	"github.com/elmkit/elmkit/internal/pkgname"
)

// member is one key/value pair of an ordered JSON object.
type member struct {
	key string
	val any
}

// object is a JSON object that marshals its members in slice order, unlike a
// Go map. The encoder's output must keep a fixed key order so that repeated
// encodes of the same Outline are byte-for-byte identical and diffable.
type object []member

func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalPlain(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalPlain(m.val)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalPlain marshals v without HTML escaping. Constraint strings contain
// "<" characters that must land in the file verbatim, not as <.
func marshalPlain(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Encode renders an Outline as manifest JSON. The key set and key order are
// fixed per manifest kind; dependency maps are emitted sorted by package
// name. Exposed modules encode back to whichever shape they were built with,
// no normalization between the two.
func Encode(o Outline) []byte {
	var root object
	switch v := o.(type) {
	case *AppOutline:
		root = appObject(v)
	case *PkgOutline:
		root = pkgObject(v)
	default:
		panic(fmt.Sprintf("unknown outline variant %T", o))
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(root); err != nil {
		// The value tree is built from strings and slices only.
		panic(fmt.Sprintf("encoding outline: %v", err))
	}
	// Encoder.Encode terminates the document with a newline.
	return buf.Bytes()
}

func appObject(app *AppOutline) object {
	return object{
		{"type", TypeApplication},
		{"source-directories", app.SourceDirs.All()},
		{"elm-version", app.ElmVersion.String()},
		{"dependencies", object{
			{"direct", pinnedObject(app.Direct)},
			{"indirect", pinnedObject(app.Indirect)},
		}},
		{"test-dependencies", object{
			{"direct", pinnedObject(app.TestDirect)},
			{"indirect", pinnedObject(app.TestIndirect)},
		}},
	}
}

func pkgObject(pkg *PkgOutline) object {
	return object{
		{"type", TypePackage},
		{"name", pkg.Name.String()},
		{"summary", pkg.Summary},
		{"license", pkg.License.String()},
		{"version", pkg.Version.String()},
		{"exposed-modules", exposedValue(pkg.Exposed)},
		{"elm-version", pkg.ElmVersion.String()},
		{"dependencies", rangedObject(pkg.Deps)},
		{"test-dependencies", rangedObject(pkg.TestDeps)},
	}
}

func exposedValue(e Exposed) any {
	switch v := e.(type) {
	case ExposedList:
		return moduleStrings(v)
	case ExposedSections:
		sections := object{}
		for _, s := range v {
			sections = append(sections, member{s.Header, moduleStrings(s.Modules)})
		}
		return sections
	default:
		panic(fmt.Sprintf("unknown exposed variant %T", e))
	}
}

func moduleStrings(modules []modname.Name) []string {
	out := make([]string, len(modules))
	for i, m := range modules {
		out[i] = m.String()
	}
	return out
}

func pinnedObject(deps Pinned) object {
	out := object{}
	for _, name := range sortedPinned(deps) {
		out = append(out, member{name.String(), deps[name].String()})
	}
	return out
}

func rangedObject(deps Ranged) object {
	out := object{}
	for _, name := range sortedRanged(deps) {
		out = append(out, member{name.String(), deps[name].String()})
	}
	return out
}

// sortedPinned returns the keys of deps sorted by canonical name.
func sortedPinned(deps Pinned) []pkgname.Name {
	names := make([]pkgname.Name, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i].Compare(names[j]) < 0
	})
	return names
}

// sortedRanged returns the keys of deps sorted by canonical name.
func sortedRanged(deps Ranged) []pkgname.Name {
	names := make([]pkgname.Name, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return names[i].Compare(names[j]) < 0
	})
	return names
}
