package version

import (
	"fmt"
	"sort"

	"github.com/quay/pkgaudit"
)

// BoundKind distinguishes the three shapes a range endpoint can take.
type BoundKind int

const (
	Unbounded BoundKind = iota
	Inclusive
	Exclusive
)

// Bound is one endpoint of an UnaffectedRange.
type Bound struct {
	Kind BoundKind
	Ver  Version
}

// UnboundedBound is the zero-value Unbounded endpoint.
var UnboundedBound = Bound{Kind: Unbounded}

// InclusiveBound constructs an inclusive endpoint at v.
func InclusiveBound(v Version) Bound { return Bound{Kind: Inclusive, Ver: v} }

// ExclusiveBound constructs an exclusive endpoint at v.
func ExclusiveBound(v Version) Bound { return Bound{Kind: Exclusive, Ver: v} }

func (b Bound) version() (Version, bool) {
	if b.Kind == Unbounded {
		return Version{}, false
	}
	return b.Ver, true
}

// UnaffectedRange is a declared-safe interval over Version, expressed as a
// pair of bounds. It is the intermediate representation the advisory
// `versions.patched`/`versions.unaffected` requirements are normalized into
// before being inverted into affected ranges.
type UnaffectedRange struct {
	Start Bound
	End   Bound
}

// IsValid reports whether the range is well-formed: either bound may be
// unbounded, or start must precede end, with equality tolerated only for
// degenerate single-point ranges where at least one side is inclusive.
func (r UnaffectedRange) IsValid() bool {
	sv, sok := r.Start.version()
	ev, eok := r.End.version()
	if !sok || !eok {
		return true
	}
	if sv.Less(ev) {
		return true
	}
	if !sv.Equal(ev) {
		return false
	}
	switch {
	case r.Start.Kind == Exclusive && r.End.Kind == Inclusive:
		return true
	case r.Start.Kind == Inclusive && r.End.Kind == Exclusive:
		return true
	case r.Start.Kind == Inclusive && r.End.Kind == Inclusive:
		return true
	default:
		return false
	}
}

// Overlap reports whether the two (valid) ranges share any version.
// Requires both ranges to be valid; behavior is undefined otherwise.
//
// Two ranges overlap iff a.Start <= b.End and b.Start <= a.End, where "<="
// between an exclusive bound and a coincident bound on the other side is
// false: [1.2.3, +inf) and (-inf, 1.2.3) are disjoint, but [1.2.3, +inf)
// and (-inf, 1.2.3] overlap.
func Overlap(a, b UnaffectedRange) bool {
	return boundLessOrEqual(a.Start, b.End) && boundLessOrEqual(b.Start, a.End)
}

func boundLessOrEqual(a, b Bound) bool {
	av, aok := a.version()
	bv, bok := b.version()
	if !aok || !bok {
		return true
	}
	switch {
	case av.Compare(bv) > 0:
		return false
	case av.Equal(bv):
		return a.Kind == Inclusive && b.Kind == Inclusive
	default:
		return true
	}
}

// VersionReqToUnaffectedRange maps a version requirement of at most two
// comparators into a single two-bounded range:
//
//	>v  -> start=Exclusive(v)
//	>=v -> start=Inclusive(v)
//	<v  -> end=Exclusive(v)
//	<=v -> end=Inclusive(v)
//	^v  -> [v, ceiling(v)) where ceiling bumps the leftmost non-zero of the
//	       major and minor components, or the patch component when both are
//	       zero; ^ must be the sole comparator in its requirement.
//
// Any requirement violating this discipline — more than two comparators,
// more than one lower or upper bound, an "=" or "~" comparator, or a "^"
// sharing its requirement with another comparator — fails with ErrVersion.
func VersionReqToUnaffectedRange(req VersionReq) (UnaffectedRange, error) {
	const op = "version.VersionReqToUnaffectedRange"
	if len(req.Comparators) > 2 {
		return UnaffectedRange{}, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: fmt.Sprintf("too many comparators in %q", req.String())}
	}
	var out UnaffectedRange
	for _, c := range req.Comparators {
		switch c.Op {
		case Gt:
			if out.Start.Kind != Unbounded {
				return UnaffectedRange{}, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: "more than one lower bound in the same range"}
			}
			out.Start = ExclusiveBound(c.Ver)
		case GtEq:
			if out.Start.Kind != Unbounded {
				return UnaffectedRange{}, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: "more than one lower bound in the same range"}
			}
			out.Start = InclusiveBound(c.Ver)
		case Lt:
			if out.End.Kind != Unbounded {
				return UnaffectedRange{}, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: "more than one upper bound in the same range"}
			}
			out.End = ExclusiveBound(c.Ver)
		case LtEq:
			if out.End.Kind != Unbounded {
				return UnaffectedRange{}, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: "more than one upper bound in the same range"}
			}
			out.End = InclusiveBound(c.Ver)
		case Compatible:
			if len(req.Comparators) != 1 {
				return UnaffectedRange{}, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: "'^' must be alone in its requirement"}
			}
			var ceil Version
			if c.Ver.Major() != 0 {
				ceil = fromParts(c.Ver.Major()+1, 0, 0, []preIdent{{numeric: true, num: 0}})
			} else if c.Ver.Minor() != 0 {
				ceil = fromParts(0, c.Ver.Minor()+1, 0, []preIdent{{numeric: true, num: 0}})
			} else {
				ceil = fromParts(0, 0, c.Ver.Patch()+1, []preIdent{{numeric: true, num: 0}})
			}
			out.Start = InclusiveBound(c.Ver)
			out.End = ExclusiveBound(ceil)
		default:
			return UnaffectedRange{}, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: fmt.Sprintf("comparator %q cannot appear in a patched/unaffected requirement", c.Op)}
		}
	}
	if !out.IsValid() {
		return UnaffectedRange{}, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: fmt.Sprintf("invalid range produced from %q", req.String())}
	}
	return out, nil
}

// AffectedRange is a half-open `[Introduced, Fixed)` interval over Version.
// Either endpoint may be nil, meaning unbounded in that direction.
type AffectedRange struct {
	Introduced *Version
	Fixed      *Version
}

// Contains reports whether v falls within the affected range.
func (r AffectedRange) Contains(v Version) bool {
	if r.Introduced != nil && v.Less(*r.Introduced) {
		return false
	}
	if r.Fixed != nil && !v.Less(*r.Fixed) {
		return false
	}
	return true
}

// Invert computes the affected ranges that are the complement of the given
// (pairwise non-overlapping) unaffected ranges.
//
// Empty input inverts to the single unbounded range (everything affected).
// Every gap boundary that is inclusive on the unaffected side becomes
// exclusive on the affected side and vice versa, by applying Next across the
// inclusive/exclusive boundary.
func Invert(ranges []UnaffectedRange) ([]AffectedRange, error) {
	const op = "version.Invert"
	for _, r := range ranges {
		if !r.IsValid() {
			return nil, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: "invalid unaffected range in input"}
		}
	}
	if len(ranges) == 0 {
		return []AffectedRange{{}}, nil
	}
	for i, a := range ranges[:len(ranges)-1] {
		for _, b := range ranges[i+1:] {
			if Overlap(a, b) {
				return nil, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: "overlapping unaffected/patched ranges"}
			}
		}
	}

	sorted := make([]UnaffectedRange, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool {
		vi, oki := sorted[i].Start.version()
		vj, okj := sorted[j].Start.version()
		switch {
		case !oki && !okj:
			return false
		case !oki:
			return true
		case !okj:
			return false
		default:
			return vi.Less(vj)
		}
	})

	var out []AffectedRange

	first := sorted[0].Start
	switch first.Kind {
	case Unbounded:
	case Exclusive:
		v := Next(first.Ver)
		out = append(out, AffectedRange{Fixed: &v})
	case Inclusive:
		v := first.Ver
		out = append(out, AffectedRange{Fixed: &v})
	}

	for i := 0; i < len(sorted)-1; i++ {
		var startV Version
		switch sorted[i].End.Kind {
		case Unbounded:
			return nil, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: "unbounded end in a non-terminal range"}
		case Exclusive:
			startV = sorted[i].End.Ver
		case Inclusive:
			startV = Next(sorted[i].End.Ver)
		}
		var endV Version
		switch sorted[i+1].Start.Kind {
		case Unbounded:
			return nil, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: "unbounded start in a non-initial range"}
		case Exclusive:
			endV = Next(sorted[i+1].Start.Ver)
		case Inclusive:
			endV = sorted[i+1].Start.Ver
		}
		s, e := startV, endV
		out = append(out, AffectedRange{Introduced: &s, Fixed: &e})
	}

	last := sorted[len(sorted)-1].End
	switch last.Kind {
	case Unbounded:
	case Exclusive:
		v := last.Ver
		out = append(out, AffectedRange{Introduced: &v})
	case Inclusive:
		v := Next(last.Ver)
		out = append(out, AffectedRange{Introduced: &v})
	}

	return out, nil
}
