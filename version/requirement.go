package version

import (
	"fmt"
	"strings"

	"github.com/quay/pkgaudit"
)

// Op is a version-comparator operator.
type Op int

// Defined comparator operators.
const (
	Eq         Op = iota // =
	Gt                   // >
	GtEq                 // >=
	Lt                   // <
	LtEq                 // <=
	Tilde                // ~
	Compatible           // ^
)

func (op Op) String() string {
	switch op {
	case Eq:
		return "="
	case Gt:
		return ">"
	case GtEq:
		return ">="
	case Lt:
		return "<"
	case LtEq:
		return "<="
	case Tilde:
		return "~"
	case Compatible:
		return "^"
	default:
		return "?"
	}
}

// Comparator is a single requirement predicate: an operator plus a version
// to compare against.
type Comparator struct {
	Op  Op
	Ver Version
}

func (c Comparator) String() string { return c.Op.String() + c.Ver.String() }

// Matches reports whether v satisfies the comparator, following the
// matching rules used by the advisory corpus (not the stricter npm/cargo
// pre-release exclusion rules): a pre-release version matches a comparator
// whose own version has an equal-or-greater pre-release tag, or whose
// comparator is itself a pre-release of the same release triple.
func (c Comparator) Matches(v Version) bool {
	switch c.Op {
	case Eq:
		return c.Ver.Major() == v.Major() && c.Ver.Minor() == v.Minor() && c.Ver.Patch() == v.Patch() &&
			comparePre(c.Ver.pre, v.pre) == 0
	case Gt:
		return isGreater(c.Ver, v)
	case GtEq:
		return c.Matches1(Eq, v) || isGreater(c.Ver, v)
	case Lt:
		return !c.Matches1(Eq, v) && !isGreater(c.Ver, v)
	case LtEq:
		return !isGreater(c.Ver, v)
	case Tilde:
		return matchesTilde(c.Ver, v)
	case Compatible:
		return matchesCompatible(c.Ver, v)
	default:
		return false
	}
}

// Matches1 lets Matches reuse the Eq branch without recursing through the op
// field.
func (c Comparator) Matches1(op Op, v Version) bool {
	cc := c
	cc.Op = op
	return cc.Matches(v)
}

// isGreater reports whether v is strictly greater than bound, per the
// pre-release-aware predicate used by the advisory matcher: once the
// release triple matches, a bound with no pre-release beats any
// pre-release version of the same triple (so "> 1.2.3" excludes
// "1.2.3-anything", matching the intent that pre-releases of an as-yet
// unreleased version are not implicitly newer).
func isGreater(bound, v Version) bool {
	if bound.Major() != v.Major() {
		return v.Major() > bound.Major()
	}
	if bound.Minor() != v.Minor() {
		return v.Minor() > bound.Minor()
	}
	if bound.Patch() != v.Patch() {
		return v.Patch() > bound.Patch()
	}
	if len(bound.pre) == 0 {
		return false
	}
	return !v.IsPrerelease() || comparePre(v.pre, bound.pre) > 0
}

func matchesTilde(bound, v Version) bool {
	if bound.Major() != v.Major() {
		return false
	}
	return bound.Minor() == v.Minor() && v.Patch() >= bound.Patch()
}

func matchesCompatible(bound, v Version) bool {
	if bound.Major() != v.Major() {
		return false
	}
	if bound.Major() == 0 {
		if bound.Minor() == 0 {
			return v.Minor() == 0 && v.Patch() == bound.Patch() && preCompatible(bound, v)
		}
		return v.Minor() == bound.Minor() &&
			(v.Patch() > bound.Patch() || (v.Patch() == bound.Patch() && preCompatible(bound, v)))
	}
	return v.Minor() > bound.Minor() ||
		(v.Minor() == bound.Minor() &&
			(v.Patch() > bound.Patch() || (v.Patch() == bound.Patch() && preCompatible(bound, v))))
}

func preCompatible(bound, v Version) bool {
	return !v.IsPrerelease() || comparePre(v.pre, bound.pre) >= 0
}

// VersionReq is an ordered list of comparators. A version matches the
// requirement when it satisfies every comparator (conjunction).
type VersionReq struct {
	Comparators []Comparator
	raw         string
}

func (r VersionReq) String() string {
	if r.raw != "" {
		return r.raw
	}
	parts := make([]string, len(r.Comparators))
	for i, c := range r.Comparators {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}

// Matches reports whether v satisfies every comparator in the requirement.
func (r VersionReq) Matches(v Version) bool {
	for _, c := range r.Comparators {
		if !c.Matches(v) {
			return false
		}
	}
	return true
}

// ParseReq parses a comma-separated version requirement, e.g. ">= 1.2.3",
// "^1.0", "~1.2, < 1.9.0", or a bare "1.2.3" (equivalent to "^1.2.3").
func ParseReq(s string) (VersionReq, error) {
	raw := s
	parts := strings.Split(s, ",")
	out := make([]Comparator, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		c, err := parseComparator(p)
		if err != nil {
			return VersionReq{}, err
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return VersionReq{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: "version.ParseReq", Message: fmt.Sprintf("empty version requirement %q", s)}
	}
	return VersionReq{Comparators: out, raw: raw}, nil
}

func parseComparator(s string) (Comparator, error) {
	op, rest := Compatible, s
	switch {
	case strings.HasPrefix(s, ">="):
		op, rest = GtEq, s[2:]
	case strings.HasPrefix(s, "<="):
		op, rest = LtEq, s[2:]
	case strings.HasPrefix(s, ">"):
		op, rest = Gt, s[1:]
	case strings.HasPrefix(s, "<"):
		op, rest = Lt, s[1:]
	case strings.HasPrefix(s, "="):
		op, rest = Eq, s[1:]
	case strings.HasPrefix(s, "~"):
		op, rest = Tilde, s[1:]
	case strings.HasPrefix(s, "^"):
		op, rest = Compatible, s[1:]
	default:
		op, rest = Compatible, s
	}
	rest = strings.TrimSpace(rest)
	v, err := Parse(rest)
	if err != nil {
		return Comparator{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: "version.parseComparator", Message: fmt.Sprintf("malformed comparator %q", s), Inner: err}
	}
	return Comparator{Op: op, Ver: v}, nil
}
