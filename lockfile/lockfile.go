// Package lockfile implements the resolved dependency manifest: parsing
// either on-disk dialect, resolving abbreviated dependency references,
// emitting the canonical text form, and constructing the package
// dependency graph.
//
// Modeled as a single in-memory representation with a detected
// [ResolveVersion] tag; parsing uses an intermediate "encodable" structure
// (mirroring the approach taken by the upstream Cargo.lock parser this
// engine's lockfile format descends from) so that round-trips do not
// depend on the public model's invariants.
package lockfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/quay/pkgaudit"
	"github.com/quay/pkgaudit/version"
)

// ResolveVersion tags which on-disk dialect a Lockfile was parsed from, or
// should be serialized as.
type ResolveVersion int

const (
	// V1 is the older dialect: every dependency reference is fully
	// qualified (name, version, source); checksums live in the top-level
	// metadata table keyed by a "checksum name version (source)" string.
	V1 ResolveVersion = iota
	// V2 is the newer dialect: dependency references may omit version
	// and/or source when unambiguous by name; checksums are stored inline
	// on each package.
	V2
)

func (v ResolveVersion) String() string {
	if v == V1 {
		return "v1"
	}
	return "v2"
}

// Dependency is a reference to exactly one Package in the lockfile. In the
// V1 dialect every field is populated; in V2 version and source may be
// omitted when the name alone is unambiguous.
type Dependency struct {
	Name    string
	Version *version.Version
	Source  *string
}

func (d Dependency) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	if d.Version != nil {
		b.WriteByte(' ')
		b.WriteString(d.Version.String())
	}
	if d.Source != nil {
		fmt.Fprintf(&b, " (%s)", *d.Source)
	}
	return b.String()
}

func parseDependency(s string) (Dependency, error) {
	const op = "lockfile.parseDependency"
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Dependency{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: "empty dependency string"}
	}
	d := Dependency{Name: fields[0]}
	rest := fields[1:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "(") {
		v, err := version.Parse(rest[0])
		if err != nil {
			return Dependency{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: fmt.Sprintf("malformed dependency version in %q", s), Inner: err}
		}
		d.Version = &v
		rest = rest[1:]
	}
	if len(rest) > 0 {
		src := rest[0]
		if len(src) < 2 || !strings.HasPrefix(src, "(") || !strings.HasSuffix(src, ")") {
			return Dependency{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: fmt.Sprintf("malformed source in dependency: %s", s)}
		}
		src = src[1 : len(src)-1]
		d.Source = &src
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return Dependency{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: fmt.Sprintf("malformed dependency: %s", s)}
	}
	return d, nil
}

// Package is one resolved package in the lockfile: an exact name, version,
// and optional source and checksum, plus its direct dependencies. Name,
// version, and source together identify a package uniquely within one
// lockfile.
type Package struct {
	Name         string
	Version      version.Version
	Source       *string
	Checksum     *string
	Dependencies []Dependency
	Replace      *Dependency
}

func (p Package) key() packageKey { return packageKey{p.Name, p.Version.String()} }

type packageKey struct{ name, ver string }

// Lockfile is the parsed dependency manifest: a detected dialect, the
// ordered list of packages in source order, an optional legacy root
// package, a metadata table, and the patch section.
type Lockfile struct {
	Version  ResolveVersion
	Packages []Package
	Root     *Package
	Metadata map[string]string
	Patch    struct {
		Unused []Package
	}
}

// encodable mirrors the on-disk TOML shape, independent of the public
// model's invariants.
type encodableLockfile struct {
	Version  *int                `toml:"version"`
	Package  []encodablePackage  `toml:"package"`
	Root     *encodablePackage   `toml:"root"`
	Metadata map[string]string   `toml:"metadata"`
	Patch    struct {
		Unused []encodablePackage `toml:"unused"`
	} `toml:"patch"`
}

type encodablePackage struct {
	Name         string   `toml:"name"`
	Version      string   `toml:"version"`
	Source       *string  `toml:"source"`
	Checksum     *string  `toml:"checksum"`
	Dependencies []string `toml:"dependencies"`
	Replace      *string  `toml:"replace"`
}

// Parse parses a lockfile document in either on-disk dialect.
func Parse(data []byte) (Lockfile, error) {
	const op = "lockfile.Parse"
	var raw encodableLockfile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return Lockfile{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: "malformed lockfile", Inner: err}
	}

	rv := detectDialect(raw)

	packages := make([]Package, 0, len(raw.Package))
	for i := range raw.Package {
		p, err := resolvePackage(&raw.Package[i], raw.Package, rv, raw.Metadata)
		if err != nil {
			return Lockfile{}, err
		}
		packages = append(packages, p)
	}

	var root *Package
	if raw.Root != nil {
		p, err := resolvePackage(raw.Root, raw.Package, rv, raw.Metadata)
		if err != nil {
			return Lockfile{}, err
		}
		root = &p
	}

	unused := make([]Package, 0, len(raw.Patch.Unused))
	for i := range raw.Patch.Unused {
		p, err := resolvePackage(&raw.Patch.Unused[i], raw.Package, rv, raw.Metadata)
		if err != nil {
			return Lockfile{}, err
		}
		unused = append(unused, p)
	}

	lf := Lockfile{Version: rv, Packages: packages, Root: root, Metadata: raw.Metadata}
	lf.Patch.Unused = unused
	return lf, nil
}

// detectDialect implements §4.4's dialect-detection rule: trust an
// explicit top-level version field; otherwise infer from where checksums
// live.
func detectDialect(raw encodableLockfile) ResolveVersion {
	if raw.Version != nil {
		if *raw.Version >= 3 {
			return V2
		}
		return V1
	}
	for _, p := range raw.Package {
		if p.Checksum != nil {
			return V2
		}
	}
	for k := range raw.Metadata {
		if strings.HasPrefix(k, "checksum ") {
			return V1
		}
	}
	return V2
}

func resolvePackage(raw *encodablePackage, all []encodablePackage, rv ResolveVersion, metadata map[string]string) (Package, error) {
	v, err := version.Parse(raw.Version)
	if err != nil {
		return Package{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: "lockfile.resolvePackage", Message: fmt.Sprintf("malformed package version for %s", raw.Name), Inner: err}
	}
	p := Package{Name: raw.Name, Version: v, Source: raw.Source}

	for _, depStr := range raw.Dependencies {
		dep, err := parseDependency(depStr)
		if err != nil {
			return Package{}, err
		}
		resolved, err := resolveDependency(dep, all, rv)
		if err != nil {
			return Package{}, err
		}
		p.Dependencies = append(p.Dependencies, resolved)
	}

	if raw.Replace != nil {
		dep, err := parseDependency(*raw.Replace)
		if err != nil {
			return Package{}, err
		}
		resolved, err := resolveDependency(dep, all, rv)
		if err != nil {
			return Package{}, err
		}
		p.Replace = &resolved
	}

	switch rv {
	case V1:
		if cs, ok := findChecksum(metadata, p.Name, v.String(), raw.Source); ok {
			p.Checksum = &cs
		}
	default:
		p.Checksum = raw.Checksum
	}

	return p, nil
}

// resolveDependency resolves an abbreviated V2 dependency reference
// against the full package list, or passes a fully-qualified V1
// reference through unchanged.
func resolveDependency(dep Dependency, all []encodablePackage, rv ResolveVersion) (Dependency, error) {
	if rv == V1 || (dep.Version != nil && dep.Source != nil) {
		return dep, nil
	}
	var matches []encodablePackage
	for _, p := range all {
		if p.Name != dep.Name {
			continue
		}
		if dep.Version != nil && p.Version != dep.Version.String() {
			continue
		}
		matches = append(matches, p)
	}
	switch len(matches) {
	case 0:
		return Dependency{}, &pkgaudit.Error{Kind: pkgaudit.ErrNotFound, Op: "lockfile.resolveDependency", Message: fmt.Sprintf("unresolvable dependency: %s", dep.Name)}
	case 1:
		v, err := version.Parse(matches[0].Version)
		if err != nil {
			return Dependency{}, err
		}
		return Dependency{Name: matches[0].Name, Version: &v, Source: matches[0].Source}, nil
	default:
		return Dependency{}, &pkgaudit.Error{Kind: pkgaudit.ErrNotFound, Op: "lockfile.resolveDependency", Message: fmt.Sprintf("unresolvable dependency: %s matches %d packages", dep.Name, len(matches))}
	}
}

func findChecksum(metadata map[string]string, name, ver string, source *string) (string, bool) {
	want := fmt.Sprintf("checksum %s %s (%s)", name, ver, derefOr(source, ""))
	if cs, ok := metadata[want]; ok {
		return cs, true
	}
	// Tolerate a missing source segment.
	prefix := fmt.Sprintf("checksum %s %s ", name, ver)
	for k, v := range metadata {
		if strings.HasPrefix(k, prefix) {
			return v, true
		}
	}
	return "", false
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// sortedMetadataKeys returns metadata keys in sorted order, for
// deterministic serialization.
func sortedMetadataKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
