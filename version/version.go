// Package version implements the semantic-version algebra the advisory
// engine is built on: parsing, ordering, the pre-release successor rule, and
// the unaffected/affected range inversion used by the database and the
// interchange exporter.
//
// Version storage and base comparison are delegated to
// [github.com/Masterminds/semver], the same library the rest of the
// ecosystem's tooling uses for registry version handling; the pre-release
// successor and requirement-to-range algebra are specific to this engine and
// are implemented on top of it, mirroring the relationship between the
// RustSec advisory-db tooling and the upstream `semver` crate it wraps.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver"

	"github.com/quay/pkgaudit"
)

// Version is a semantic-version triple with optional pre-release identifiers
// and build metadata. Values are immutable once parsed.
type Version struct {
	v   *semver.Version
	pre []preIdent
}

// Parse parses s as a semantic version.
func Parse(s string) (Version, error) {
	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: "version.Parse", Message: fmt.Sprintf("malformed version %q", s), Inner: err}
	}
	return Version{v: sv, pre: parsePre(sv.Prerelease())}, nil
}

// MustParse is like Parse but panics on error. Intended for constructing
// fixed sentinel versions (e.g. the OSV "introduced from the beginning"
// marker), not for handling untrusted input.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func fromParts(major, minor, patch int64, pre []preIdent) Version {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d.%d", major, minor, patch)
	if len(pre) != 0 {
		b.WriteByte('-')
		for i, p := range pre {
			if i != 0 {
				b.WriteByte('.')
			}
			b.WriteString(p.String())
		}
	}
	return MustParse(b.String())
}

// Major, Minor, and Patch return the numbered components of the version.
func (v Version) Major() int64 { return v.v.Major() }
func (v Version) Minor() int64 { return v.v.Minor() }
func (v Version) Patch() int64 { return v.v.Patch() }

// IsPrerelease reports whether the version has pre-release identifiers.
func (v Version) IsPrerelease() bool { return len(v.pre) != 0 }

// String renders the canonical textual form of the version.
func (v Version) String() string { return v.v.String() }

// Compare returns -1, 0, or +1 depending on whether v is less than, equal
// to, or greater than o.
func (v Version) Compare(o Version) int { return v.v.Compare(o.v) }

// Less reports whether v orders strictly before o.
func (v Version) Less(o Version) bool { return v.Compare(o) < 0 }

// Equal reports whether v and o compare equal, ignoring build metadata.
func (v Version) Equal(o Version) bool { return v.Compare(o) == 0 }

// Next returns the least version strictly greater than v under semver
// ordering.
//
// If v has no pre-release identifiers, the result is v with the patch
// incremented and a "-0" pre-release appended (e.g. "1.2.3" becomes
// "1.2.4-0"): the lowest version sorting strictly above v and strictly below
// v's successor release.
//
// If v has pre-release identifiers, the last identifier is incremented in
// place: numeric identifiers increment by one; alphanumeric identifiers have
// their last character replaced by its successor in the ordered alphabet
// `-, 0-9, A-Z, _, a-z`, with the smallest alphabet character appended when
// the last character has no successor. Build metadata is dropped.
func Next(v Version) Version {
	if !v.IsPrerelease() {
		return fromParts(v.Major(), v.Minor(), v.Patch()+1, []preIdent{{numeric: true, num: 0}})
	}
	pre := make([]preIdent, len(v.pre))
	copy(pre, v.pre)
	last := &pre[len(pre)-1]
	if last.numeric {
		last.num++
	} else {
		last.str = incrementAlnum(last.str)
	}
	return fromParts(v.Major(), v.Minor(), v.Patch(), pre)
}

// alphabet is the successor ordering used for the last character of an
// alphanumeric pre-release identifier, per the engine's next-version rule.
const alphabet = "-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

func incrementAlnum(s string) string {
	if s == "" {
		return string(alphabet[0])
	}
	b := []byte(s)
	last := b[len(b)-1]
	i := strings.IndexByte(alphabet, last)
	if i == -1 || i == len(alphabet)-1 {
		return s + string(alphabet[0])
	}
	b[len(b)-1] = alphabet[i+1]
	return string(b)
}

// preIdent is a single dot-separated pre-release identifier: either a
// numeric field (compares numerically) or an alphanumeric field (compares
// lexically, and always sorts after any numeric field per semver 2.0 §11).
type preIdent struct {
	numeric bool
	num     uint64
	str     string
}

func (p preIdent) String() string {
	if p.numeric {
		return strconv.FormatUint(p.num, 10)
	}
	return p.str
}

func parsePre(s string) []preIdent {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ".")
	out := make([]preIdent, len(parts))
	for i, p := range parts {
		if n, err := strconv.ParseUint(p, 10, 64); err == nil && (p == "0" || p[0] != '0') {
			out[i] = preIdent{numeric: true, num: n}
		} else {
			out[i] = preIdent{str: p}
		}
	}
	return out
}

// comparePre orders two pre-release identifier lists per semver 2.0 §11.
func comparePre(a, b []preIdent) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].compare(b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func (p preIdent) compare(o preIdent) int {
	switch {
	case p.numeric && o.numeric:
		switch {
		case p.num < o.num:
			return -1
		case p.num > o.num:
			return 1
		default:
			return 0
		}
	case p.numeric && !o.numeric:
		return -1 // numeric identifiers always have lower precedence
	case !p.numeric && o.numeric:
		return 1
	default:
		return strings.Compare(p.str, o.str)
	}
}
