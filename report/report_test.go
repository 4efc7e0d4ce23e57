package report

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/quay/pkgaudit/advisory"
	"github.com/quay/pkgaudit/database"
	"github.com/quay/pkgaudit/lockfile"
	"github.com/quay/pkgaudit/report/reportmock"
	"github.com/quay/pkgaudit/version"
)

const vulnAdvisory = "```toml\n" + `[advisory]
id = "RUSTSEC-2020-0001"
package = "acme"
date = "2020-01-01"

[versions]
patched = [">= 2.0.0"]
` + "```" + `

# Heap overflow

details
`

const noticeAdvisory = "```toml\n" + `[advisory]
id = "RUSTSEC-2020-0002"
package = "acme"
date = "2020-02-01"
informational = "unmaintained"

[versions]
patched = []
` + "```" + `

# acme is unmaintained

details
`

func buildDB(t *testing.T) *database.Database {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "crates", "acme")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "RUSTSEC-2020-0001.md"), []byte(vulnAdvisory), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "RUSTSEC-2020-0002.md"), []byte(noticeAdvisory), 0o644); err != nil {
		t.Fatal(err)
	}
	db, err := database.Load(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestGenerateVulnerabilityAndWarning(t *testing.T) {
	db := buildDB(t)
	lf := lockfile.Lockfile{
		Packages: []lockfile.Package{
			{Name: "acme", Version: version.MustParse("1.0.0")},
		},
	}
	settings := Settings{
		InformationalWarnings: []advisory.Informational{advisory.Unmaintained},
	}

	rpt, err := Generate(context.Background(), db, lf, settings, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !rpt.Found {
		t.Error("expected Found to be true")
	}
	if len(rpt.Vulnerabilities) != 1 {
		t.Fatalf("vulnerabilities = %+v", rpt.Vulnerabilities)
	}
	if len(rpt.Warnings[WarningUnmaintained]) != 1 {
		t.Fatalf("warnings = %+v", rpt.Warnings)
	}
}

func TestGenerateIgnore(t *testing.T) {
	db := buildDB(t)
	lf := lockfile.Lockfile{
		Packages: []lockfile.Package{
			{Name: "acme", Version: version.MustParse("1.0.0")},
		},
	}
	adv, ok := db.Get("RUSTSEC-2020-0001")
	if !ok {
		t.Fatal("missing advisory")
	}
	settings := Settings{Ignore: []advisory.ID{adv.Metadata.ID}}
	rpt, err := Generate(context.Background(), db, lf, settings, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rpt.Found {
		t.Error("expected no vulnerabilities after ignoring the only advisory")
	}
}

func TestGenerateYankOracle(t *testing.T) {
	db := buildDB(t)
	lf := lockfile.Lockfile{
		Packages: []lockfile.Package{
			{Name: "other", Version: version.MustParse("1.0.0")},
		},
	}
	ctrl := gomock.NewController(t)
	oracle := reportmock.NewMockYankOracle(ctrl)
	oracle.EXPECT().FindYanked(gomock.Any(), gomock.Any()).Return(lf.Packages, nil)

	rpt, err := Generate(context.Background(), db, lf, Settings{}, oracle)
	if err != nil {
		t.Fatal(err)
	}
	if len(rpt.Warnings[WarningYanked]) != 1 {
		t.Fatalf("yank warnings = %+v", rpt.Warnings)
	}
}
