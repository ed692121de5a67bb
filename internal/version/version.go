package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/elmkit/elmkit/internal/bincode"
)

// Version is an exact MAJOR.MINOR.PATCH version.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// One is the initial version assigned to new packages.
var One = Version{Major: 1, Minor: 0, Patch: 0}

// Parse parses a version string of exactly the form MAJOR.MINOR.PATCH.
func Parse(s string) (Version, error) {
	sv, err := semver.StrictNewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("expecting a version like %q: %w", "2.0.1", err)
	}
	if sv.Prerelease() != "" || sv.Metadata() != "" {
		return Version{}, fmt.Errorf("expecting a version like %q, with no prerelease or build suffix", "2.0.1")
	}
	return Version{Major: sv.Major(), Minor: sv.Minor(), Patch: sv.Patch()}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0, or 1 when v is lower than, equal to, or higher
// than o.
func (v Version) Compare(o Version) int {
	return v.semver().Compare(o.semver())
}

func (v Version) semver() *semver.Version {
	return semver.New(v.Major, v.Minor, v.Patch, "", "")
}

// EncodeBinary writes v to the cache encoding.
func (v Version) EncodeBinary(w *bincode.Writer) {
	w.Uvarint(v.Major)
	w.Uvarint(v.Minor)
	w.Uvarint(v.Patch)
}

// DecodeVersionBinary reads a Version from the cache encoding.
func DecodeVersionBinary(r *bincode.Reader) Version {
	return Version{
		Major: r.Uvarint(),
		Minor: r.Uvarint(),
		Patch: r.Uvarint(),
	}
}
