// Package advisory implements the typed representation of one security
// advisory: its structured metadata, its free-form prose, parsing from the
// hybrid fenced-front-matter file format, and the linter that checks an
// advisory against the corpus's closed set of well-formed fields.
package advisory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quay/pkgaudit"
)

// PlaceholderID is the unassigned-advisory placeholder identifier, legal
// wherever an Id is expected.
const PlaceholderID = "RUSTSEC-0000-0000"

const (
	yearMin = 2000
	yearMax = 2100
)

// IDKind is the detected kind of an advisory identifier.
type IDKind int

const (
	KindRustsec IDKind = iota
	KindCVE
	KindGHSA
	KindOther
)

func (k IDKind) String() string {
	switch k {
	case KindRustsec:
		return "rustsec"
	case KindCVE:
		return "cve"
	case KindGHSA:
		return "ghsa"
	default:
		return "other"
	}
}

func detectKind(s string) IDKind {
	switch {
	case strings.HasPrefix(s, "RUSTSEC-"):
		return KindRustsec
	case strings.HasPrefix(s, "CVE-"):
		return KindCVE
	case strings.HasPrefix(s, "GHSA-"):
		return KindGHSA
	default:
		return KindOther
	}
}

// ID is a structured advisory identifier: a detected kind, an optional
// embedded year, and the canonical string form.
type ID struct {
	kind IDKind
	year int // 0 if unknown
	str  string
}

// ParseID parses s as an advisory identifier.
func ParseID(s string) (ID, error) {
	if s == PlaceholderID {
		return ID{kind: KindRustsec, str: s}, nil
	}
	kind := detectKind(s)
	var year int
	switch kind {
	case KindRustsec, KindCVE:
		y, err := parseYear(s)
		if err != nil {
			return ID{}, err
		}
		year = y
	case KindGHSA:
		// GHSA identifiers don't embed a calendar year in their string form.
	}
	return ID{kind: kind, year: year, str: s}, nil
}

func parseYear(s string) (int, error) {
	parts := strings.Split(s, "-")
	if len(parts) < 2 {
		return 0, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: "advisory.ParseID", Message: fmt.Sprintf("incomplete advisory id: %s", s)}
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < yearMin || n > yearMax {
		return 0, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: "advisory.ParseID", Message: fmt.Sprintf("malformed or out-of-range year in advisory id: %s", s)}
	}
	if len(parts) < 3 || parts[2] == "" {
		return 0, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: "advisory.ParseID", Message: fmt.Sprintf("incomplete advisory id: %s", s)}
	}
	return n, nil
}

// String returns the canonical string form of the identifier.
func (id ID) String() string { return id.str }

// Kind reports the detected identifier kind.
func (id ID) Kind() IDKind { return id.kind }

// Year reports the embedded year, if any.
func (id ID) Year() (int, bool) { return id.year, id.year != 0 }

// IsPlaceholder reports whether id is the RUSTSEC-0000-0000 placeholder.
func (id ID) IsPlaceholder() bool { return id.str == PlaceholderID }

// IsOther reports whether the identifier kind is unknown.
func (id ID) IsOther() bool { return id.kind == KindOther }

// URL returns a web page with more information about the advisory, if one
// is known for the identifier's kind.
func (id ID) URL() (string, bool) {
	switch id.kind {
	case KindRustsec:
		if id.IsPlaceholder() {
			return "", false
		}
		return "https://rustsec.org/advisories/" + id.str, true
	case KindCVE:
		return "https://cve.mitre.org/cgi-bin/cvename.cgi?name=" + id.str, true
	case KindGHSA:
		return "https://github.com/advisories/" + id.str, true
	default:
		return "", false
	}
}
