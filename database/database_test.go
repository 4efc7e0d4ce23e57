package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/quay/pkgaudit/lockfile"
	"github.com/quay/pkgaudit/version"
)

const acmeAdvisory = "```toml\n" + `[advisory]
id = "RUSTSEC-2019-0001"
package = "acme"
date = "2019-03-01"
categories = ["memory-corruption"]

[versions]
patched = [">= 1.2.4"]
` + "```" + `

# Buffer overflow in acme::parse

Crafted input could overflow an internal buffer.
`

func buildTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "crates", "acme")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "RUSTSEC-2019-0001.md"), []byte(acmeAdvisory), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestLoadAndQuery(t *testing.T) {
	root := buildTree(t)
	db, err := Load(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if len(db.All()) != 1 {
		t.Fatalf("advisories = %d, want 1", len(db.All()))
	}
	if _, ok := db.Get("RUSTSEC-2019-0001"); !ok {
		t.Fatal("expected to find advisory by id")
	}

	q := CrateScope().WithPackageName("acme")
	got := db.Query(q)
	if len(got) != 1 {
		t.Fatalf("query = %d results, want 1", len(got))
	}
}

func TestQueryVulnerabilities(t *testing.T) {
	root := buildTree(t)
	db, err := Load(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	lf := lockfile.Lockfile{
		Packages: []lockfile.Package{
			{Name: "acme", Version: version.MustParse("1.0.0")},
			{Name: "acme", Version: version.MustParse("2.0.0")},
		},
	}
	vulns := db.Vulnerabilities(lf)
	if len(vulns) != 1 {
		t.Fatalf("vulns = %+v", vulns)
	}
	if vulns[0].Package.Version.String() != "1.0.0" {
		t.Errorf("matched package version = %s, want 1.0.0", vulns[0].Package.Version.String())
	}
}
