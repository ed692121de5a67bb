package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/elmkit/elmkit/internal/bincode"
)

// Op is a comparison operator inside a constraint.
type Op uint8

const (
	Less Op = iota
	LessOrEqual
)

func (op Op) String() string {
	if op == LessOrEqual {
		return "<="
	}
	return "<"
}

// Constraint is a version range of the form "LOWER OP v OP UPPER", where each
// operator is "<" or "<=".
type Constraint struct {
	Lower   Version
	LowerOp Op
	UpperOp Op
	Upper   Version
}

// ParseConstraint parses a constraint string like "1.0.0 <= v < 2.0.0".
func ParseConstraint(s string) (Constraint, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 5 || parts[2] != "v" {
		return Constraint{}, fmt.Errorf("expecting a constraint like %q", "1.0.0 <= v < 2.0.0")
	}
	lower, err := Parse(parts[0])
	if err != nil {
		return Constraint{}, fmt.Errorf("bad lower bound: %w", err)
	}
	lowerOp, err := parseOp(parts[1])
	if err != nil {
		return Constraint{}, err
	}
	upperOp, err := parseOp(parts[3])
	if err != nil {
		return Constraint{}, err
	}
	upper, err := Parse(parts[4])
	if err != nil {
		return Constraint{}, fmt.Errorf("bad upper bound: %w", err)
	}
	if lower.Compare(upper) > 0 {
		return Constraint{}, fmt.Errorf("lower bound %s is above upper bound %s", lower, upper)
	}
	return Constraint{Lower: lower, LowerOp: lowerOp, UpperOp: upperOp, Upper: upper}, nil
}

func parseOp(s string) (Op, error) {
	switch s {
	case "<":
		return Less, nil
	case "<=":
		return LessOrEqual, nil
	default:
		return 0, fmt.Errorf("expecting %q or %q, found %q", "<", "<=", s)
	}
}

// UntilNextMajor is the conventional constraint admitting v and every later
// version below the next major release.
func UntilNextMajor(v Version) Constraint {
	return Constraint{
		Lower:   v,
		LowerOp: LessOrEqual,
		UpperOp: Less,
		Upper:   Version{Major: v.Major + 1},
	}
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s %s v %s %s", c.Lower, c.LowerOp, c.UpperOp, c.Upper)
}

// Satisfies reports whether v falls inside the range.
func (c Constraint) Satisfies(v Version) bool {
	lowerOp := ">"
	if c.LowerOp == LessOrEqual {
		lowerOp = ">="
	}
	expr := fmt.Sprintf("%s%s, %s%s", lowerOp, c.Lower, c.UpperOp, c.Upper)
	check, err := semver.NewConstraint(expr)
	if err != nil {
		// Both bounds are parsed Versions, so the expression is always well formed.
		panic(fmt.Sprintf("building constraint %q: %v", expr, err))
	}
	return check.Check(v.semver())
}

// EncodeBinary writes c to the cache encoding.
func (c Constraint) EncodeBinary(w *bincode.Writer) {
	c.Lower.EncodeBinary(w)
	w.Byte(byte(c.LowerOp))
	w.Byte(byte(c.UpperOp))
	c.Upper.EncodeBinary(w)
}

// DecodeConstraintBinary reads a Constraint from the cache encoding.
func DecodeConstraintBinary(r *bincode.Reader) Constraint {
	lower := DecodeVersionBinary(r)
	lowerOp := decodeOp(r)
	upperOp := decodeOp(r)
	upper := DecodeVersionBinary(r)
	return Constraint{Lower: lower, LowerOp: lowerOp, UpperOp: upperOp, Upper: upper}
}

func decodeOp(r *bincode.Reader) Op {
	switch b := r.Byte(); b {
	case byte(Less):
		return Less
	case byte(LessOrEqual):
		return LessOrEqual
	default:
		r.Corrupt("unknown constraint operator %d", b)
		return 0
	}
}
