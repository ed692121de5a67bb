package outline

import (
	"fmt"
	"strings"
)

// Problem classifies a structural decode failure.
type Problem uint8

const (
	// ProblemSyntax means the input was not valid JSON at all.
	ProblemSyntax Problem = iota
	// ProblemExpecting means a required field was missing or had the wrong
	// JSON type.
	ProblemExpecting
	ProblemBadType
	ProblemBadVersion
	ProblemBadConstraint
	ProblemNoSourceDirs
	ProblemBadPackageName
	ProblemSummaryTooLong
	ProblemBadLicense
	ProblemBadModuleName
	ProblemModuleHeaderTooLong
	ProblemBadDependencyName
)

var problemNames = map[Problem]string{
	ProblemSyntax:              "syntax",
	ProblemExpecting:           "expecting",
	ProblemBadType:             "bad-type",
	ProblemBadVersion:          "bad-version",
	ProblemBadConstraint:       "bad-constraint",
	ProblemNoSourceDirs:        "no-source-dirs",
	ProblemBadPackageName:      "bad-package-name",
	ProblemSummaryTooLong:      "summary-too-long",
	ProblemBadLicense:          "bad-license",
	ProblemBadModuleName:       "bad-module-name",
	ProblemModuleHeaderTooLong: "module-header-too-long",
	ProblemBadDependencyName:   "bad-dependency-name",
}

func (p Problem) String() string {
	if name, ok := problemNames[p]; ok {
		return name
	}
	return fmt.Sprintf("problem(%d)", uint8(p))
}

// DecodeError is a structural JSON decode failure. Decoding is fail-fast, so
// a decode reports at most one DecodeError: the first problem encountered.
type DecodeError struct {
	Problem Problem
	Field   string // JSON path of the offending field, "" for the document itself
	Value   string // offending literal, if one exists
	Err     error  // wrapped grammar error, if one exists
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	if e.Field != "" {
		fmt.Fprintf(&b, "field %q: ", e.Field)
	}
	switch e.Problem {
	case ProblemSyntax:
		b.WriteString("manifest is not valid JSON")
	case ProblemExpecting:
		b.WriteString("missing or malformed value")
	case ProblemBadType:
		fmt.Fprintf(&b, "unknown project type %q, expecting %q or %q", e.Value, TypeApplication, TypePackage)
	case ProblemNoSourceDirs:
		b.WriteString("need at least one source directory")
	case ProblemSummaryTooLong:
		b.WriteString("summary must be under 80 code points")
	case ProblemModuleHeaderTooLong:
		fmt.Fprintf(&b, "section header %q must be under 20 code points", e.Value)
	case ProblemBadDependencyName:
		fmt.Fprintf(&b, "invalid dependency name %q", e.Value)
	default:
		fmt.Fprintf(&b, "invalid value %q", e.Value)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// BadSourceDirsError reports every declared source directory that does not
// exist on disk, in the order declared. It is only produced after a fully
// successful structural decode of an application manifest.
type BadSourceDirsError struct {
	Missing []string
}

func (e *BadSourceDirsError) Error() string {
	return fmt.Sprintf("missing source directories: %s", strings.Join(e.Missing, ", "))
}
