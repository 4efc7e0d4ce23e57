package advisory

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/quay/pkgaudit"
)

// LintError is one violation found while linting the raw front-matter tree
// of an advisory against the currently valid set of fields. Linting never
// fails the parse; violations are accumulated instead.
type LintError struct {
	Kind    LintErrorKind
	Section string // "" for a toplevel violation
	Msg     string // optional additional context
}

func (e LintError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Section != "" {
		fmt.Fprintf(&b, " in [%s]", e.Section)
	} else {
		b.WriteString(" in toplevel")
	}
	if e.Msg != "" {
		fmt.Fprintf(&b, ": %s", e.Msg)
	}
	return b.String()
}

// LintErrorKind discriminates the shape of a lint violation.
type LintErrorKind struct {
	Malformed bool
	Key       string
	Value     string
}

func (k LintErrorKind) String() string {
	switch {
	case k.Malformed:
		return "malformed content"
	case k.Value != "":
		return fmt.Sprintf("invalid value %q for key %q", k.Value, k.Key)
	default:
		return fmt.Sprintf("invalid key %q", k.Key)
	}
}

func invalidKey(key string) LintErrorKind     { return LintErrorKind{Key: key} }
func invalidValue(key, val string) LintErrorKind { return LintErrorKind{Key: key, Value: val} }

// Linter holds the parsed advisory together with any lint violations found
// in its raw front-matter.
type Linter struct {
	advisory Advisory
	errors   []LintError
}

// LintString lints the given advisory document string.
func LintString(s string, collection Collection) (*Linter, error) {
	adv, err := Parse([]byte(s), collection)
	if err != nil {
		return nil, err
	}
	front, _, err := splitFrontMatter(s)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if _, err := toml.Decode(front, &tree); err != nil {
		return nil, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: "advisory.LintString", Message: "malformed front-matter", Inner: err}
	}

	l := &Linter{advisory: adv}
	l.lintAdvisory(tree)
	return l, nil
}

// Advisory returns the parsed advisory.
func (l *Linter) Advisory() Advisory { return l.advisory }

// Errors returns the lint violations found, if any.
func (l *Linter) Errors() []LintError { return l.errors }

func (l *Linter) lintAdvisory(tree map[string]any) {
	for key, val := range tree {
		switch key {
		case "advisory":
			l.lintMetadata(val)
		case "versions":
			l.lintVersions(val)
		case "affected":
			l.lintAffected(val)
		default:
			l.errors = append(l.errors, LintError{Kind: invalidKey(key)})
		}
	}
}

var metadataAllowedKeys = map[string]bool{
	"aliases": true, "cvss": true, "date": true, "keywords": true,
	"obsolete": true, "package": true, "references": true, "title": true,
	"description": true, "related": true, "withdrawn": true,
	"informational": true,
}

func (l *Linter) lintMetadata(v any) {
	table, ok := v.(map[string]any)
	if !ok {
		l.errors = append(l.errors, LintError{Kind: LintErrorKind{Malformed: true}, Section: "advisory", Msg: "expected table"})
		return
	}
	for key, val := range table {
		switch key {
		case "id":
			if l.advisory.Metadata.ID.IsOther() {
				l.errors = append(l.errors, LintError{Kind: invalidValue("id", fmt.Sprint(val)), Section: "advisory", Msg: "unknown advisory id kind"})
			}
		case "categories":
			for _, c := range l.advisory.Metadata.Categories {
				if c.String() == "unknown" {
					l.errors = append(l.errors, LintError{Kind: invalidValue("category", c.String()), Section: "advisory", Msg: "unknown category"})
				}
			}
		case "collection":
			l.errors = append(l.errors, LintError{Kind: LintErrorKind{Malformed: true}, Section: "advisory", Msg: "collection shouldn't be explicit; inferred by location"})
		case "url":
			if s, ok := val.(string); ok && !strings.HasPrefix(s, "https://") {
				l.errors = append(l.errors, LintError{Kind: invalidValue("url", s), Section: "advisory", Msg: "url must start with https://"})
			}
		default:
			if !metadataAllowedKeys[key] {
				l.errors = append(l.errors, LintError{Kind: invalidKey(key), Section: "advisory"})
			}
		}
	}
}

func (l *Linter) lintVersions(v any) {
	table, ok := v.(map[string]any)
	if !ok {
		return
	}
	for key := range table {
		switch key {
		case "patched", "unaffected":
		default:
			l.errors = append(l.errors, LintError{Kind: invalidKey(key), Section: "versions"})
		}
	}
}

func (l *Linter) lintAffected(v any) {
	table, ok := v.(map[string]any)
	if !ok {
		return
	}
	for key := range table {
		switch key {
		case "functions":
			if l.advisory.Affected == nil {
				continue
			}
			for fn := range l.advisory.Affected.Functions {
				if !strings.HasPrefix(fn, l.advisory.Metadata.Package+"::") && fn != l.advisory.Metadata.Package {
					l.errors = append(l.errors, LintError{Kind: invalidValue("functions", fn), Section: "affected", Msg: "function path must start with the package name"})
				}
			}
		case "arch", "os":
		default:
			l.errors = append(l.errors, LintError{Kind: invalidKey(key), Section: "affected"})
		}
	}
}
