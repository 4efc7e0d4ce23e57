package osv

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/quay/pkgaudit/advisory"
)

const sample = "```toml\n" + `[advisory]
id = "RUSTSEC-2019-0001"
package = "acme"
date = "2019-03-01"
url = "https://rustsec.org/advisories/RUSTSEC-2019-0001"
categories = ["memory-corruption"]
cvss = "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"

[versions]
patched = [">= 1.2.4"]
unaffected = ["< 1.0.0"]
` + "```" + `

# Buffer overflow in acme::parse

A crafted input could overflow an internal buffer.
`

func TestExport(t *testing.T) {
	adv, err := advisory.Parse([]byte(sample), advisory.CollectionCrates)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := Export(context.Background(), adv, "crates/acme/RUSTSEC-2019-0001.md", nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.ID != "RUSTSEC-2019-0001" {
		t.Errorf("id = %q", doc.ID)
	}
	if doc.Published != "2019-03-01T12:00:00Z" {
		t.Errorf("published = %q", doc.Published)
	}
	if doc.Modified != doc.Published {
		t.Errorf("modified should fall back to published, got %q", doc.Modified)
	}
	if len(doc.Severity) != 1 || doc.Severity[0].Type != "CVSS_V3" {
		t.Fatalf("severity = %+v", doc.Severity)
	}
	if len(doc.Affected) != 1 {
		t.Fatalf("affected = %+v", doc.Affected)
	}
	aff := doc.Affected[0]
	if aff.Package.Ecosystem != Ecosystem || aff.Package.Name != "acme" {
		t.Errorf("package = %+v", aff.Package)
	}
	if len(aff.Ranges) != 1 {
		t.Fatalf("ranges = %+v", aff.Ranges)
	}
	events := aff.Ranges[0].Events
	if len(events) != 2 || events[0].Introduced != "1.0.0" || events[1].Fixed != "1.2.4" {
		t.Fatalf("events = %+v", events)
	}

	var refReport bool
	for _, r := range doc.References {
		if r.Type == ReferenceAdvisory {
			refReport = true
		}
	}
	if !refReport {
		t.Errorf("expected an ADVISORY reference, got %+v", doc.References)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"id":"RUSTSEC-2019-0001"`) {
		t.Errorf("json output missing id field: %s", data)
	}
}

func TestExportModifiedFromMap(t *testing.T) {
	adv, err := advisory.Parse([]byte(sample), advisory.CollectionCrates)
	if err != nil {
		t.Fatal(err)
	}
	ts := time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	path := "crates/acme/RUSTSEC-2019-0001.md"
	doc, err := Export(context.Background(), adv, path, map[string]time.Time{path: ts})
	if err != nil {
		t.Fatal(err)
	}
	if doc.Modified != "2021-06-15T00:00:00Z" {
		t.Errorf("modified = %q", doc.Modified)
	}
}

func TestExportUnaffectedOnly(t *testing.T) {
	const noPatch = "```toml\n" + `[advisory]
id = "RUSTSEC-2019-0002"
package = "acme"
date = "2019-03-01"

[versions]
unaffected = ["< 1.0.0"]
` + "```" + "\n\n# t\n\nd\n"
	adv, err := advisory.Parse([]byte(noPatch), advisory.CollectionCrates)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := Export(context.Background(), adv, "x", nil)
	if err != nil {
		t.Fatal(err)
	}
	events := doc.Affected[0].Ranges[0].Events
	if len(events) != 1 || events[0].Introduced != "1.0.0" {
		t.Fatalf("events = %+v", events)
	}
}
