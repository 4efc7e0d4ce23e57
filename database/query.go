package database

import (
	"github.com/quay/pkgaudit/advisory"
	"github.com/quay/pkgaudit/lockfile"
	"github.com/quay/pkgaudit/toolkit/types/cvss"
	"github.com/quay/pkgaudit/version"
)

// Query composes a set of optional filters over the advisory database.
// A zero Query is a wildcard matching everything; use [CrateScope] for
// the conventional default (crates collection, withdrawn and
// informational advisories excluded).
type Query struct {
	collection    advisory.Collection
	packageName   string
	packageVer    *version.Version
	packageSource *string
	minSeverity   *cvss.Qualitative
	targetArch    string
	targetOS      string
	year          *int
	withdrawn     *bool
	informational *bool
}

// CrateScope is the conventional default scope: only the crates
// collection, excluding withdrawn and informational advisories.
func CrateScope() Query {
	f := false
	return Query{
		collection:    advisory.CollectionCrates,
		withdrawn:     &f,
		informational: &f,
	}
}

// WithCollection restricts the query to the given collection.
func (q Query) WithCollection(c advisory.Collection) Query { q.collection = c; return q }

// WithPackage scopes the query to a specific lockfile package by its name
// and version. The package's source is recorded on the query but does not
// narrow the matches.
func (q Query) WithPackage(p lockfile.Package) Query {
	q.packageName = p.Name
	v := p.Version
	q.packageVer = &v
	q.packageSource = p.Source
	return q
}

// WithPackageName restricts the query to a package name.
func (q Query) WithPackageName(name string) Query { q.packageName = name; return q }

// WithMinSeverity sets the minimum CVSS qualitative severity threshold.
// Advisories with no CVSS information always match regardless of this
// setting.
func (q Query) WithMinSeverity(s cvss.Qualitative) Query { q.minSeverity = &s; return q }

// WithTargetArch restricts matches to advisories whose affected.arch list
// is empty or contains arch.
func (q Query) WithTargetArch(arch string) Query { q.targetArch = arch; return q }

// WithTargetOS restricts matches to advisories whose affected.os list is
// empty or contains os.
func (q Query) WithTargetOS(os string) Query { q.targetOS = os; return q }

// WithYear excludes advisories whose id embeds a year other than y.
// Advisories whose id embeds no year are not excluded.
func (q Query) WithYear(y int) Query { q.year = &y; return q }

// WithWithdrawn sets whether withdrawn advisories should match.
func (q Query) WithWithdrawn(v bool) Query { q.withdrawn = &v; return q }

// WithInformational sets whether informational advisories should match.
func (q Query) WithInformational(v bool) Query { q.informational = &v; return q }

func (q Query) matches(adv advisory.Advisory) bool {
	if q.collection != "" && q.collection != adv.Metadata.Collection {
		return false
	}
	if q.packageName != "" && q.packageName != adv.Metadata.Package {
		return false
	}
	if q.packageVer != nil && !adv.Versions.IsVulnerable(*q.packageVer) {
		return false
	}
	if q.minSeverity != nil {
		if vec, ok, err := adv.CVSS(); err == nil && ok {
			_, severity := cvss.Score(vec)
			if severity < *q.minSeverity {
				return false
			}
		}
	}
	if adv.Affected != nil {
		if q.targetArch != "" && len(adv.Affected.Arch) != 0 && !contains(adv.Affected.Arch, q.targetArch) {
			return false
		}
		if q.targetOS != "" && len(adv.Affected.OS) != 0 && !contains(adv.Affected.OS, q.targetOS) {
			return false
		}
	}
	if q.year != nil {
		if y, ok := adv.Metadata.ID.Year(); ok && y != *q.year {
			return false
		}
	}
	if q.withdrawn != nil && *q.withdrawn != adv.IsWithdrawn() {
		return false
	}
	if q.informational != nil && *q.informational != adv.IsInformational() {
		return false
	}
	return true
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
