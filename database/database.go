// Package database implements the in-memory advisory database: loading a
// directory tree of advisory files into indexed storage, and querying it
// by id, package, or an arbitrary composed [Query].
package database

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/quay/pkgaudit"
	"github.com/quay/pkgaudit/advisory"
	"github.com/quay/pkgaudit/lockfile"
	"github.com/quay/pkgaudit/toolkit/log"
)

// Database is a loaded, indexed collection of advisories. It is
// immutable once built; callers wanting updated data call [Load] again.
type Database struct {
	byID      map[string]advisory.Advisory
	byPackage map[string]map[string][]advisory.Advisory // collection -> package -> advisories
	all       []advisory.Advisory
}

// Load walks root, reading every .md and .toml advisory file in each
// package directory under each collection subdirectory (crates/,
// local-ecosystem/), and returns the indexed result. Dotfiles are skipped; a directory entry that
// is not itself a directory is skipped (mirrors the upstream loader's
// dir-entry filter).
func Load(ctx context.Context, root string) (_ *Database, err error) {
	const op = "database.Load"
	ctx, span := tracer.Start(ctx, "Load")
	defer span.End()
	defer loadTiming(&err)()
	ctx = log.With(ctx, "root", root)

	db := &Database{
		byID:      make(map[string]advisory.Advisory),
		byPackage: make(map[string]map[string][]advisory.Advisory),
	}

	collections := []advisory.Collection{advisory.CollectionCrates, advisory.CollectionLocal}
	for _, collection := range collections {
		collectionPath := filepath.Join(root, string(collection))
		entries, err := os.ReadDir(collectionPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, &pkgaudit.Error{Kind: pkgaudit.ErrIO, Op: op, Message: "reading collection directory", Inner: err}
		}
		for _, pkgDir := range entries {
			if !pkgDir.IsDir() || strings.HasPrefix(pkgDir.Name(), ".") {
				continue
			}
			pkgPath := filepath.Join(collectionPath, pkgDir.Name())
			advisoryEntries, err := os.ReadDir(pkgPath)
			if err != nil {
				return nil, &pkgaudit.Error{Kind: pkgaudit.ErrIO, Op: op, Message: "reading package directory", Inner: err}
			}
			for _, f := range advisoryEntries {
				if err := ctx.Err(); err != nil {
					return nil, &pkgaudit.Error{Kind: pkgaudit.ErrCancelled, Op: op, Inner: err}
				}
				if f.IsDir() || strings.HasPrefix(f.Name(), ".") {
					continue
				}
				if !strings.HasSuffix(f.Name(), ".md") && !strings.HasSuffix(f.Name(), ".toml") {
					continue
				}
				advisoryPath := filepath.Join(pkgPath, f.Name())
				data, err := os.ReadFile(advisoryPath)
				if err != nil {
					return nil, &pkgaudit.Error{Kind: pkgaudit.ErrIO, Op: op, Message: advisoryPath, Inner: err}
				}
				adv, err := advisory.Parse(data, collection)
				if err != nil {
					return nil, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: advisoryPath, Inner: err}
				}
				if adv.Metadata.Package != "" && adv.Metadata.Package != pkgDir.Name() {
					return nil, &pkgaudit.Error{Kind: pkgaudit.ErrBadParam, Op: op, Message: "advisory package " + adv.Metadata.Package + " does not match directory " + pkgDir.Name()}
				}
				if adv.Metadata.Package == "" {
					adv.Metadata.Package = pkgDir.Name()
				}
				db.insert(adv)
				advisoriesLoaded.Inc()
				slog.DebugContext(ctx, "loaded advisory", "id", adv.Metadata.ID.String(), "package", adv.Metadata.Package)
			}
		}
	}
	slog.InfoContext(ctx, "database load complete", "advisories", len(db.all))
	return db, nil
}

func (db *Database) insert(adv advisory.Advisory) {
	db.byID[adv.Metadata.ID.String()] = adv
	db.all = append(db.all, adv)
	collection := string(adv.Metadata.Collection)
	if db.byPackage[collection] == nil {
		db.byPackage[collection] = make(map[string][]advisory.Advisory)
	}
	db.byPackage[collection][adv.Metadata.Package] = append(db.byPackage[collection][adv.Metadata.Package], adv)
}

// Get looks up an advisory by its exact identifier string.
func (db *Database) Get(id string) (advisory.Advisory, bool) {
	adv, ok := db.byID[id]
	return adv, ok
}

// All returns every loaded advisory, in load order.
func (db *Database) All() []advisory.Advisory {
	out := make([]advisory.Advisory, len(db.all))
	copy(out, db.all)
	return out
}

// Query evaluates q against the database, using the package+collection
// index when the query names both.
func (db *Database) Query(q Query) []advisory.Advisory {
	if q.packageName != "" && q.collection != "" {
		byPkg := db.byPackage[string(q.collection)]
		candidates := byPkg[q.packageName]
		out := make([]advisory.Advisory, 0, len(candidates))
		for _, adv := range candidates {
			if q.matches(adv) {
				out = append(out, adv)
			}
		}
		return out
	}
	out := make([]advisory.Advisory, 0)
	for _, adv := range db.all {
		if q.matches(adv) {
			out = append(out, adv)
		}
	}
	return out
}

// Vulnerability pairs a matching advisory with the lockfile package it
// matched.
type Vulnerability struct {
	Advisory advisory.Advisory
	Package  lockfile.Package
}

// QueryVulnerabilities finds advisories matching q for every package in
// lf, scoping the query by each package's name and version in turn (see
// [Query.WithPackage]: the source does not narrow the matches).
func (db *Database) QueryVulnerabilities(lf lockfile.Lockfile, q Query) []Vulnerability {
	var out []Vulnerability
	for _, pkg := range lf.Packages {
		scoped := q.WithPackage(pkg)
		for _, adv := range db.Query(scoped) {
			out = append(out, Vulnerability{Advisory: adv, Package: pkg})
		}
	}
	return out
}

// Vulnerabilities scans lf for vulnerabilities using the default crate
// scope (see [CrateScope]).
func (db *Database) Vulnerabilities(lf lockfile.Lockfile) []Vulnerability {
	return db.QueryVulnerabilities(lf, CrateScope())
}
