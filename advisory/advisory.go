package advisory

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/quay/pkgaudit"
	"github.com/quay/pkgaudit/toolkit/types/cvss"
	"github.com/quay/pkgaudit/version"
)

// Collection identifies which ecosystem an advisory belongs to. It is
// never read from the advisory file itself — it is inferred from the
// directory the file was loaded from (see package database).
type Collection string

const (
	CollectionCrates Collection = "crates"
	CollectionLocal  Collection = "local-ecosystem"
)

// Metadata is the `[advisory]` section of an advisory file.
type Metadata struct {
	ID             ID
	Package        string
	Collection     Collection
	Date           *Date
	Aliases        []ID
	Related        []ID
	Title          string
	Description    string
	URL            string
	References     []string
	Categories     []Category
	Keywords       []string
	CVSS           string
	Informational  *Informational
	Withdrawn      *Date
}

// Affected is the optional `[affected]` section: the set of architectures
// and operating systems an advisory applies to, and per-function version
// requirements.
type Affected struct {
	Arch      []string
	OS        []string
	Functions map[string][]version.VersionReq
}

// Advisory is one security advisory: its metadata, the derived patched and
// unaffected version requirements, the optional per-function affected
// detail, and free-form prose (title and description).
type Advisory struct {
	Metadata    Metadata
	Versions    Versions
	Affected    *Affected
	Title       string
	Description string
}

// tomlDoc mirrors the on-disk front-matter shape for decoding via
// BurntSushi/toml; Advisory is the richer, validated public model built
// from it.
type tomlDoc struct {
	Advisory struct {
		ID            string   `toml:"id"`
		Package       string   `toml:"package"`
		Date          string   `toml:"date"`
		Title         string   `toml:"title"`
		Description   string   `toml:"description"`
		URL           string   `toml:"url"`
		References    []string `toml:"references"`
		Aliases       []string `toml:"aliases"`
		Related       []string `toml:"related"`
		Categories    []string `toml:"categories"`
		Keywords      []string `toml:"keywords"`
		CVSS          string   `toml:"cvss"`
		Informational string   `toml:"informational"`
		Withdrawn     string   `toml:"withdrawn"`
	} `toml:"advisory"`
	Versions struct {
		Patched    []string `toml:"patched"`
		Unaffected []string `toml:"unaffected"`
	} `toml:"versions"`
	Affected struct {
		Arch      []string            `toml:"arch"`
		OS        []string            `toml:"os"`
		Functions map[string][]string `toml:"functions"`
	} `toml:"affected"`
}

// Parse parses the fenced front-matter plus prose advisory document in
// data. collection is the collection the advisory was discovered under
// (see package database); it is not read from the document itself.
func Parse(data []byte, collection Collection) (Advisory, error) {
	const op = "advisory.Parse"
	front, prose, err := splitFrontMatter(string(data))
	if err != nil {
		return Advisory{}, err
	}

	var doc tomlDoc
	if _, err := toml.Decode(front, &doc); err != nil {
		return Advisory{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: "malformed front-matter", Inner: err}
	}

	id, err := ParseID(doc.Advisory.ID)
	if err != nil {
		return Advisory{}, err
	}

	md := Metadata{
		ID:          id,
		Package:     doc.Advisory.Package,
		Collection:  collection,
		Title:       doc.Advisory.Title,
		Description: doc.Advisory.Description,
		URL:         doc.Advisory.URL,
		References:  doc.Advisory.References,
		Keywords:    doc.Advisory.Keywords,
		CVSS:        doc.Advisory.CVSS,
	}

	if collection == CollectionCrates && md.Package != "" {
		// Invariant: for the crates collection the package name must match
		// the enclosing directory; that check happens in package database
		// where the directory name is known.
	}

	if doc.Advisory.Date != "" {
		d, err := ParseDate(doc.Advisory.Date)
		if err != nil {
			return Advisory{}, err
		}
		md.Date = &d
	}
	if doc.Advisory.Withdrawn != "" {
		d, err := ParseDate(doc.Advisory.Withdrawn)
		if err != nil {
			return Advisory{}, err
		}
		md.Withdrawn = &d
	}
	if doc.Advisory.Informational != "" {
		inf := ParseInformational(doc.Advisory.Informational)
		md.Informational = &inf
	}
	if doc.Advisory.CVSS != "" {
		if _, err := cvss.Parse(doc.Advisory.CVSS); err != nil {
			return Advisory{}, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: "malformed cvss vector", Inner: err}
		}
	}
	for _, a := range doc.Advisory.Aliases {
		aid, err := ParseID(a)
		if err != nil {
			return Advisory{}, err
		}
		md.Aliases = append(md.Aliases, aid)
	}
	for _, r := range doc.Advisory.Related {
		rid, err := ParseID(r)
		if err != nil {
			return Advisory{}, err
		}
		md.Related = append(md.Related, rid)
	}
	for _, c := range doc.Advisory.Categories {
		cat, err := ParseCategory(c)
		if err != nil {
			return Advisory{}, err
		}
		md.Categories = append(md.Categories, cat)
	}

	vs, err := parseVersions(doc.Versions.Patched, doc.Versions.Unaffected)
	if err != nil {
		return Advisory{}, err
	}

	var affected *Affected
	if len(doc.Affected.Arch) != 0 || len(doc.Affected.OS) != 0 || len(doc.Affected.Functions) != 0 {
		a := &Affected{Arch: doc.Affected.Arch, OS: doc.Affected.OS}
		if len(doc.Affected.Functions) != 0 {
			a.Functions = make(map[string][]version.VersionReq, len(doc.Affected.Functions))
			for fn, reqs := range doc.Affected.Functions {
				parsed, err := parseReqs(reqs)
				if err != nil {
					return Advisory{}, err
				}
				a.Functions[fn] = parsed
			}
		}
		affected = a
	}

	title, desc := md.Title, md.Description
	ptitle, pdesc := splitProse(prose)
	if title == "" {
		title = ptitle
	}
	if desc == "" {
		desc = pdesc
	}

	return Advisory{
		Metadata:    md,
		Versions:    vs,
		Affected:    affected,
		Title:       title,
		Description: desc,
	}, nil
}

func parseVersions(patched, unaffected []string) (Versions, error) {
	p, err := parseReqs(patched)
	if err != nil {
		return Versions{}, err
	}
	u, err := parseReqs(unaffected)
	if err != nil {
		return Versions{}, err
	}
	return Versions{Patched: p, Unaffected: u}, nil
}

func parseReqs(ss []string) ([]version.VersionReq, error) {
	out := make([]version.VersionReq, 0, len(ss))
	for _, s := range ss {
		req, err := version.ParseReq(s)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

// splitFrontMatter separates the leading fenced code block (the
// ` ```toml ... ``` ` block) from the trailing prose.
func splitFrontMatter(s string) (front, prose string, err error) {
	const op = "advisory.splitFrontMatter"
	s = strings.TrimLeft(s, "\r\n \t")
	if !strings.HasPrefix(s, "```") {
		return "", "", &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: "advisory file does not begin with a fenced front-matter block"}
	}
	firstNL := strings.IndexByte(s, '\n')
	if firstNL == -1 {
		return "", "", &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: "truncated front-matter fence"}
	}
	rest := s[firstNL+1:]
	end := strings.Index(rest, "```")
	if end == -1 {
		return "", "", &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: "unterminated front-matter fence"}
	}
	front = rest[:end]
	afterFence := rest[end+3:]
	if nl := strings.IndexByte(afterFence, '\n'); nl != -1 {
		prose = afterFence[nl+1:]
	}
	return front, prose, nil
}

// splitProse takes the first `#` heading as the title and the remaining
// text as the description.
func splitProse(prose string) (title, description string) {
	lines := strings.Split(strings.TrimLeft(prose, "\r\n"), "\n")
	if len(lines) == 0 {
		return "", ""
	}
	first := strings.TrimSpace(lines[0])
	if strings.HasPrefix(first, "#") {
		title = strings.TrimSpace(strings.TrimLeft(first, "#"))
		description = strings.TrimSpace(strings.Join(lines[1:], "\n"))
		return title, description
	}
	return "", strings.TrimSpace(prose)
}

// IsInformational reports whether the advisory is tagged informational
// rather than describing a direct vulnerability.
func (a Advisory) IsInformational() bool { return a.Metadata.Informational != nil }

// IsWithdrawn reports whether the advisory has been withdrawn.
func (a Advisory) IsWithdrawn() bool { return a.Metadata.Withdrawn != nil }

// CVSS parses and returns the advisory's CVSS vector, if any.
func (a Advisory) CVSS() (any, bool, error) {
	if a.Metadata.CVSS == "" {
		return nil, false, nil
	}
	v, err := cvss.Parse(a.Metadata.CVSS)
	if err != nil {
		return nil, false, fmt.Errorf("advisory %s: %w", a.Metadata.ID, err)
	}
	return v, true, nil
}
