package outline

import (
	"github.com/elmkit/elmkit/internal/bincode"
	"github.com/elmkit/elmkit/internal/license"
	"github.com/elmkit/elmkit/internal/modname"
	"github.com/elmkit/elmkit/internal/pkgname"
	"github.com/elmkit/elmkit/internal/version"
)

// Variant discriminator bytes of the cache encoding.
const (
	tagApp       byte = 0
	tagPkg       byte = 1
	tagList      byte = 0
	tagSectioned byte = 1
)

// EncodeBinary renders an Outline in the compact cache form: one
// discriminator byte, then the fields in declared order, each self
// delimiting. Map fields are written sorted by package name so the encoding
// is deterministic.
func EncodeBinary(o Outline) []byte {
	var w bincode.Writer
	encodeOutline(&w, o)
	return w.Bytes()
}

// DecodeBinary reads back an Outline written by EncodeBinary. The cache is
// data this program wrote itself, so malformed input is not a recoverable
// condition: an unknown discriminator, truncation, or trailing garbage
// panics with a bincode.Corrupt value.
func DecodeBinary(data []byte) Outline {
	r := bincode.NewReader(data)
	o := decodeOutline(r)
	if !r.Done() {
		r.Corrupt("trailing data after outline")
	}
	return o
}

// EncodeExposedBinary renders an Exposed value in the cache form.
func EncodeExposedBinary(e Exposed) []byte {
	var w bincode.Writer
	encodeExposed(&w, e)
	return w.Bytes()
}

// DecodeExposedBinary reads back an Exposed written by EncodeExposedBinary.
// Like DecodeBinary, it panics on corrupt input.
func DecodeExposedBinary(data []byte) Exposed {
	r := bincode.NewReader(data)
	e := decodeExposedBinary(r)
	if !r.Done() {
		r.Corrupt("trailing data after exposed modules")
	}
	return e
}

func encodeOutline(w *bincode.Writer, o Outline) {
	switch v := o.(type) {
	case *AppOutline:
		w.Byte(tagApp)
		v.ElmVersion.EncodeBinary(w)
		encodeSourceDirs(w, v.SourceDirs)
		encodePinned(w, v.Direct)
		encodePinned(w, v.Indirect)
		encodePinned(w, v.TestDirect)
		encodePinned(w, v.TestIndirect)
	case *PkgOutline:
		w.Byte(tagPkg)
		v.Name.EncodeBinary(w)
		w.String(v.Summary)
		v.License.EncodeBinary(w)
		v.Version.EncodeBinary(w)
		encodeExposed(w, v.Exposed)
		encodeRanged(w, v.Deps)
		encodeRanged(w, v.TestDeps)
		v.ElmVersion.EncodeBinary(w)
	}
}

func decodeOutline(r *bincode.Reader) Outline {
	switch tag := r.Byte(); tag {
	case tagApp:
		elmVersion := version.DecodeVersionBinary(r)
		srcDirs := decodeSourceDirsBinary(r)
		direct := decodePinnedBinary(r)
		indirect := decodePinnedBinary(r)
		testDirect := decodePinnedBinary(r)
		testIndirect := decodePinnedBinary(r)
		return &AppOutline{
			ElmVersion:   elmVersion,
			SourceDirs:   srcDirs,
			Direct:       direct,
			Indirect:     indirect,
			TestDirect:   testDirect,
			TestIndirect: testIndirect,
		}
	case tagPkg:
		name := pkgname.DecodeBinary(r)
		summary := r.String()
		lic := license.DecodeBinary(r)
		pkgVersion := version.DecodeVersionBinary(r)
		exposed := decodeExposedBinary(r)
		deps := decodeRangedBinary(r)
		testDeps := decodeRangedBinary(r)
		elmConstraint := version.DecodeConstraintBinary(r)
		return &PkgOutline{
			Name:       name,
			Summary:    summary,
			License:    lic,
			Version:    pkgVersion,
			Exposed:    exposed,
			Deps:       deps,
			TestDeps:   testDeps,
			ElmVersion: elmConstraint,
		}
	default:
		r.Corrupt("unknown outline tag %d", tag)
		return nil
	}
}

func encodeExposed(w *bincode.Writer, e Exposed) {
	switch v := e.(type) {
	case ExposedList:
		w.Byte(tagList)
		w.Len(len(v))
		for _, m := range v {
			m.EncodeBinary(w)
		}
	case ExposedSections:
		w.Byte(tagSectioned)
		w.Len(len(v))
		for _, s := range v {
			w.String(s.Header)
			w.Len(len(s.Modules))
			for _, m := range s.Modules {
				m.EncodeBinary(w)
			}
		}
	}
}

func decodeExposedBinary(r *bincode.Reader) Exposed {
	switch tag := r.Byte(); tag {
	case tagList:
		n := r.Len()
		modules := make(ExposedList, 0, n)
		for i := 0; i < n; i++ {
			modules = append(modules, modname.DecodeBinary(r))
		}
		return modules
	case tagSectioned:
		n := r.Len()
		sections := make(ExposedSections, 0, n)
		for i := 0; i < n; i++ {
			header := r.String()
			count := r.Len()
			modules := make([]modname.Name, 0, count)
			for j := 0; j < count; j++ {
				modules = append(modules, modname.DecodeBinary(r))
			}
			sections = append(sections, Section{Header: header, Modules: modules})
		}
		return sections
	default:
		r.Corrupt("unknown exposed tag %d", tag)
		return nil
	}
}

func encodeSourceDirs(w *bincode.Writer, dirs SourceDirs) {
	all := dirs.All()
	w.Len(len(all))
	for _, dir := range all {
		w.String(dir)
	}
}

func decodeSourceDirsBinary(r *bincode.Reader) SourceDirs {
	n := r.Len()
	dirs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		dirs = append(dirs, r.String())
	}
	srcDirs, err := NewSourceDirs(dirs)
	if err != nil {
		r.Corrupt("empty source directory list")
	}
	return srcDirs
}

func encodePinned(w *bincode.Writer, deps Pinned) {
	w.Len(len(deps))
	for _, name := range sortedPinned(deps) {
		name.EncodeBinary(w)
		deps[name].EncodeBinary(w)
	}
}

func decodePinnedBinary(r *bincode.Reader) Pinned {
	n := r.Len()
	deps := make(Pinned, n)
	for i := 0; i < n; i++ {
		name := pkgname.DecodeBinary(r)
		deps[name] = version.DecodeVersionBinary(r)
	}
	return deps
}

func encodeRanged(w *bincode.Writer, deps Ranged) {
	w.Len(len(deps))
	for _, name := range sortedRanged(deps) {
		name.EncodeBinary(w)
		deps[name].EncodeBinary(w)
	}
}

func decodeRangedBinary(r *bincode.Reader) Ranged {
	n := r.Len()
	deps := make(Ranged, n)
	for i := 0; i < n; i++ {
		name := pkgname.DecodeBinary(r)
		deps[name] = version.DecodeConstraintBinary(r)
	}
	return deps
}
