// Package osv implements the standardized interchange exporter: converting
// one advisory at a time into the cross-ecosystem vulnerability exchange
// JSON format (https://ossf.github.io/osv-schema/).
package osv

import (
	"context"
	"strings"
	"time"

	packageurl "github.com/package-url/packageurl-go"

	"github.com/quay/pkgaudit"
	"github.com/quay/pkgaudit/advisory"
	"github.com/quay/pkgaudit/toolkit/types/cvss"
)

// Ecosystem names the package-manager ecosystem advisories are exported
// for, used both in the document's "affected[].package.ecosystem" field
// and to build each package's purl.
const Ecosystem = "cargo"

// introducedSentinel is the universal "introduced from the beginning"
// marker used when an affected range has no lower bound.
const introducedSentinel = "0.0.0-0"

// Advisory is one advisory rendered in the interchange schema.
type Advisory struct {
	ID        string     `json:"id"`
	Modified  string     `json:"modified"`
	Published string     `json:"published"`
	Withdrawn string     `json:"withdrawn,omitempty"`
	Aliases   []string   `json:"aliases,omitempty"`
	Related   []string   `json:"related,omitempty"`
	Summary   string     `json:"summary"`
	Details   string     `json:"details"`
	Severity  []Severity `json:"severity,omitempty"`
	Affected  []Affected `json:"affected"`
	References []Reference `json:"references,omitempty"`
}

// Severity is one CVSS-tagged severity entry.
type Severity struct {
	Type  string `json:"type"`
	Score string `json:"score"`
}

// Package identifies the affected package within its ecosystem.
type Package struct {
	Ecosystem string `json:"ecosystem"`
	Name      string `json:"name"`
	Purl      string `json:"purl"`
}

// Affected is one affected-package entry.
type Affected struct {
	Package            Package            `json:"package"`
	EcosystemSpecific  EcosystemSpecific  `json:"ecosystem_specific"`
	DatabaseSpecific   DatabaseSpecific   `json:"database_specific"`
	Ranges             []Range            `json:"ranges"`
}

// EcosystemSpecific carries detail not part of the common schema but
// useful to consumers of this exporter's ecosystem in particular.
type EcosystemSpecific struct {
	Arch      []string `json:"arch,omitempty"`
	OS        []string `json:"os,omitempty"`
	Functions []string `json:"functions,omitempty"`
}

// DatabaseSpecific carries this database's own classification of the
// advisory, for consumers that want more than the common schema offers.
type DatabaseSpecific struct {
	Categories    []string `json:"categories,omitempty"`
	CVSS          string   `json:"cvss,omitempty"`
	Informational string   `json:"informational,omitempty"`
}

// Range is one SEMVER-typed range with its introduced/fixed event
// timeline.
type Range struct {
	Type   string           `json:"type"`
	Events []TimelineEvent  `json:"events"`
}

// TimelineEvent is exactly one of Introduced or Fixed, per the OSV schema.
type TimelineEvent struct {
	Introduced string `json:"introduced,omitempty"`
	Fixed      string `json:"fixed,omitempty"`
}

// ReferenceKind classifies a reference URL's role.
type ReferenceKind string

const (
	ReferenceAdvisory ReferenceKind = "ADVISORY"
	ReferenceReport   ReferenceKind = "REPORT"
	ReferencePackage  ReferenceKind = "PACKAGE"
	ReferenceWeb      ReferenceKind = "WEB"
)

// Reference is one classified reference URL.
type Reference struct {
	Type ReferenceKind `json:"type"`
	URL  string        `json:"url"`
}

// Export converts adv into the interchange format. path is the advisory's
// repository-relative path, used to resolve a modification timestamp out
// of modTimes; when absent, modified falls back to the advisory's
// published date. ctx is observed for cancellation, per spec §5's
// per-advisory export granularity.
func Export(ctx context.Context, adv advisory.Advisory, path string, modTimes map[string]time.Time) (Advisory, error) {
	const op = "osv.Export"
	_, span := tracer.Start(ctx, "Export")
	defer span.End()
	if err := ctx.Err(); err != nil {
		return Advisory{}, &pkgaudit.Error{Kind: pkgaudit.ErrCancelled, Op: op, Inner: err}
	}
	md := adv.Metadata

	published := ""
	if md.Date != nil {
		published = dateToRFC3339(*md.Date)
	}
	modified := published
	if t, ok := modTimes[path]; ok {
		modified = t.UTC().Format(time.RFC3339)
	}

	out := Advisory{
		ID:        md.ID.String(),
		Modified:  modified,
		Published: published,
		Summary:   adv.Title,
		Details:   adv.Description,
	}
	if md.Withdrawn != nil {
		out.Withdrawn = dateToRFC3339(*md.Withdrawn)
	}
	for _, a := range md.Aliases {
		out.Aliases = append(out.Aliases, a.String())
	}
	for _, r := range md.Related {
		out.Related = append(out.Related, r.String())
	}

	if md.CVSS != "" {
		vec, err := cvss.Parse(md.CVSS)
		if err != nil {
			return Advisory{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: "malformed cvss vector", Inner: err}
		}
		typ := "CVSS_V3"
		if _, ok := vec.(*cvss.V4); ok {
			typ = "CVSS_V4"
		}
		if s, ok := vec.(interface{ String() string }); ok {
			out.Severity = append(out.Severity, Severity{Type: typ, Score: s.String()})
		}
	}

	rng, err := timelineForAdvisory(adv.Versions)
	if err != nil {
		return Advisory{}, err
	}

	pkg := Package{
		Ecosystem: Ecosystem,
		Name:      md.Package,
		Purl:      purlFor(md.Package),
	}

	ecosystemSpecific := EcosystemSpecific{}
	var categories []string
	for _, c := range md.Categories {
		categories = append(categories, c.String())
	}
	if adv.Affected != nil {
		ecosystemSpecific.Arch = adv.Affected.Arch
		ecosystemSpecific.OS = adv.Affected.OS
		for fn := range adv.Affected.Functions {
			ecosystemSpecific.Functions = append(ecosystemSpecific.Functions, fn)
		}
	}
	dbSpecific := DatabaseSpecific{Categories: categories, CVSS: md.CVSS}
	if md.Informational != nil {
		dbSpecific.Informational = md.Informational.String()
	}

	out.Affected = []Affected{{
		Package:           pkg,
		EcosystemSpecific: ecosystemSpecific,
		DatabaseSpecific:  dbSpecific,
		Ranges:            []Range{rng},
	}}

	out.References = references(md)

	return out, nil
}

func purlFor(name string) string {
	instance := packageurl.NewPackageURL(Ecosystem, "", name, "", nil, "")
	return instance.ToString()
}

func timelineForAdvisory(vs advisory.Versions) (Range, error) {
	const op = "osv.timelineForAdvisory"
	ranges, err := vs.AffectedRanges()
	if err != nil {
		return Range{}, err
	}
	if len(ranges) == 0 {
		return Range{}, &pkgaudit.Error{Kind: pkgaudit.ErrVersion, Op: op, Message: "advisory affects no versions"}
	}
	var events []TimelineEvent
	for _, r := range ranges {
		if r.Introduced != nil {
			events = append(events, TimelineEvent{Introduced: r.Introduced.String()})
		} else {
			events = append(events, TimelineEvent{Introduced: introducedSentinel})
		}
		if r.Fixed != nil {
			events = append(events, TimelineEvent{Fixed: r.Fixed.String()})
		}
	}
	return Range{Type: "SEMVER", Events: events}, nil
}

func references(md advisory.Metadata) []Reference {
	var urls []string
	urls = append(urls, "https://crates.io/crates/"+md.Package)
	if !md.ID.IsPlaceholder() {
		if u, ok := md.ID.URL(); ok {
			urls = append(urls, u)
		}
	}
	if md.URL != "" {
		urls = append(urls, md.URL)
	}
	urls = append(urls, md.References...)

	out := make([]Reference, 0, len(urls))
	for _, u := range urls {
		out = append(out, Reference{Type: guessReferenceKind(u), URL: u})
	}
	return out
}

func guessReferenceKind(url string) ReferenceKind {
	switch {
	case (strings.Contains(url, "://github.com/") || strings.Contains(url, "://gitlab.")) && strings.Contains(url, "/issues/"):
		return ReferenceReport
	case strings.Contains(url, "/advisories/") || strings.Contains(url, "://cve.mitre.org/"):
		return ReferenceAdvisory
	case strings.Contains(url, "://crates.io/crates/"):
		return ReferencePackage
	default:
		return ReferenceWeb
	}
}

func dateToRFC3339(d advisory.Date) string {
	return d.String() + "T12:00:00Z"
}
