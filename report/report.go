// Package report implements the join between a loaded advisory database
// and a lockfile: producing vulnerabilities, informational warnings, and
// yank warnings under a caller-supplied filter/scope [Settings].
package report

import (
	"context"
	"log/slog"

	"github.com/quay/pkgaudit"
	"github.com/quay/pkgaudit/advisory"
	"github.com/quay/pkgaudit/database"
	"github.com/quay/pkgaudit/lockfile"
	"github.com/quay/pkgaudit/toolkit/log"
	"github.com/quay/pkgaudit/toolkit/types/cvss"
)

// WarningKind discriminates the reasons a package may generate a warning
// rather than (or in addition to) a vulnerability.
type WarningKind string

const (
	WarningUnmaintained WarningKind = "unmaintained"
	WarningNotice       WarningKind = "notice"
	WarningUnsound      WarningKind = "unsound"
	WarningYanked       WarningKind = "yanked"
)

// Settings controls which advisories are considered a hit, and how
// informational advisories are classified.
type Settings struct {
	TargetArch            string
	TargetOS              string
	Severity              *cvss.Qualitative
	InformationalWarnings []advisory.Informational
	Ignore                []advisory.ID
	PackageScope          advisory.Collection
}

func (s Settings) informational(tag advisory.Informational) bool {
	for _, t := range s.InformationalWarnings {
		if t == tag {
			return true
		}
	}
	return false
}

func (s Settings) ignored(id advisory.ID) bool {
	for _, ig := range s.Ignore {
		if ig == id {
			return true
		}
	}
	return false
}

func (s Settings) query() database.Query {
	q := database.CrateScope()
	if s.PackageScope != "" {
		q = q.WithCollection(s.PackageScope)
	}
	if s.TargetArch != "" {
		q = q.WithTargetArch(s.TargetArch)
	}
	if s.TargetOS != "" {
		q = q.WithTargetOS(s.TargetOS)
	}
	if s.Severity != nil {
		q = q.WithMinSeverity(*s.Severity)
	}
	return q
}

// Warning is a non-vulnerability hit: an informational advisory surfaced
// per Settings.InformationalWarnings, or a yanked-package notice.
type Warning struct {
	Kind     WarningKind
	Package  lockfile.Package
	Advisory *advisory.Advisory
}

// Report is the result of one join pass: the vulnerabilities found (in
// lockfile package order), warnings grouped by kind, and a found flag.
type Report struct {
	Vulnerabilities []database.Vulnerability
	Warnings        map[WarningKind][]Warning
	Found           bool
}

// YankOracle consults an external registry for packages that have been
// yanked — pulled from the registry despite remaining resolvable in a
// lockfile. Implementations may use concurrent requests internally but
// must block until the full batch is resolved.
type YankOracle interface {
	FindYanked(ctx context.Context, packages []lockfile.Package) ([]lockfile.Package, error)
}

// Generate composes a Report from db and lf under settings, optionally
// consulting oracle for yank warnings. A nil oracle skips yank checking.
// Registry failures degrade gracefully: the report is still produced, and
// the registry error is returned alongside it rather than aborting.
func Generate(ctx context.Context, db *database.Database, lf lockfile.Lockfile, settings Settings, oracle YankOracle) (Report, error) {
	ctx, span := tracer.Start(ctx, "Generate")
	defer span.End()
	defer generateTiming()()
	ctx = log.With(ctx, "packages", len(lf.Packages))

	rpt := Report{Warnings: make(map[WarningKind][]Warning)}
	q := settings.query()

	for _, pkg := range lf.Packages {
		if err := ctx.Err(); err != nil {
			return rpt, &pkgaudit.Error{Kind: pkgaudit.ErrCancelled, Op: "report.Generate", Inner: err}
		}
		scoped := q.WithPackage(pkg)
		for _, adv := range db.Query(scoped) {
			if settings.ignored(adv.Metadata.ID) {
				continue
			}
			rpt.Vulnerabilities = append(rpt.Vulnerabilities, database.Vulnerability{Advisory: adv, Package: pkg})
		}
		if len(settings.InformationalWarnings) == 0 {
			continue
		}
		for _, adv := range db.Query(scoped.WithInformational(true)) {
			if settings.ignored(adv.Metadata.ID) || !settings.informational(*adv.Metadata.Informational) {
				continue
			}
			kind := informationalWarningKind(*adv.Metadata.Informational)
			a := adv
			rpt.Warnings[kind] = append(rpt.Warnings[kind], Warning{Kind: kind, Package: pkg, Advisory: &a})
		}
	}
	rpt.Found = len(rpt.Vulnerabilities) > 0
	vulnerabilitiesFound.Add(float64(len(rpt.Vulnerabilities)))

	var regErr error
	if oracle != nil {
		yanked, err := oracle.FindYanked(ctx, lf.Packages)
		if err != nil {
			regErr = &pkgaudit.Error{Kind: pkgaudit.ErrRegistry, Op: "report.Generate", Message: "yank oracle failed", Inner: err}
			slog.WarnContext(ctx, "yank oracle failed, report generated without yank warnings", "error", err)
		} else {
			for _, pkg := range yanked {
				rpt.Warnings[WarningYanked] = append(rpt.Warnings[WarningYanked], Warning{Kind: WarningYanked, Package: pkg})
			}
		}
	}
	for kind, ws := range rpt.Warnings {
		warningsFound.WithLabelValues(string(kind)).Add(float64(len(ws)))
	}

	return rpt, regErr
}

func informationalWarningKind(tag advisory.Informational) WarningKind {
	switch tag {
	case advisory.Unmaintained:
		return WarningUnmaintained
	case advisory.Unsound:
		return WarningUnsound
	default:
		return WarningNotice
	}
}
