package advisory

import (
	"strings"
	"testing"
)

const sampleAdvisory = "```toml\n" + `[advisory]
id = "RUSTSEC-2019-0001"
package = "acme"
date = "2019-03-01"
url = "https://rustsec.org/advisories/RUSTSEC-2019-0001"
categories = ["memory-corruption"]

[versions]
patched = [">= 1.2.4"]
unaffected = ["< 1.0.0"]

[affected]
arch = ["x86_64"]
os = ["linux"]
[affected.functions]
"acme::parse" = [">= 1.0.0, < 1.2.4"]
` + "```" + `

# Buffer overflow in acme::parse

A crafted input could overflow an internal buffer.
`

func TestParse(t *testing.T) {
	adv, err := Parse([]byte(sampleAdvisory), CollectionCrates)
	if err != nil {
		t.Fatal(err)
	}
	if adv.Metadata.ID.String() != "RUSTSEC-2019-0001" {
		t.Errorf("id = %q", adv.Metadata.ID.String())
	}
	if y, ok := adv.Metadata.ID.Year(); !ok || y != 2019 {
		t.Errorf("year = %d, %v", y, ok)
	}
	if adv.Metadata.Package != "acme" {
		t.Errorf("package = %q", adv.Metadata.Package)
	}
	if len(adv.Versions.Patched) != 1 || len(adv.Versions.Unaffected) != 1 {
		t.Fatalf("versions = %+v", adv.Versions)
	}
	if adv.Title != "Buffer overflow in acme::parse" {
		t.Errorf("title = %q", adv.Title)
	}
	if !strings.Contains(adv.Description, "crafted input") {
		t.Errorf("description = %q", adv.Description)
	}
	if adv.Affected == nil || len(adv.Affected.Arch) != 1 {
		t.Fatalf("affected = %+v", adv.Affected)
	}
}

func TestParsePlaceholderID(t *testing.T) {
	doc := strings.Replace(sampleAdvisory, "RUSTSEC-2019-0001", PlaceholderID, -1)
	adv, err := Parse([]byte(doc), CollectionCrates)
	if err != nil {
		t.Fatal(err)
	}
	if !adv.Metadata.ID.IsPlaceholder() {
		t.Error("expected placeholder id")
	}
	if _, ok := adv.Metadata.ID.Year(); ok {
		t.Error("placeholder id should have no year")
	}
}

func TestAdvisoryIDKinds(t *testing.T) {
	tt := []struct {
		id   string
		kind IDKind
		year int
	}{
		{"RUSTSEC-2018-0001", KindRustsec, 2018},
		{"CVE-2017-1000168", KindCVE, 2017},
		{"GHSA-xxxx-yyyy-zzzz", KindGHSA, 0},
		{"Anonymous-42", KindOther, 0},
	}
	for _, tc := range tt {
		id, err := ParseID(tc.id)
		if err != nil {
			t.Errorf("ParseID(%q): %v", tc.id, err)
			continue
		}
		if id.Kind() != tc.kind {
			t.Errorf("%q: kind = %v, want %v", tc.id, id.Kind(), tc.kind)
		}
		if y, _ := id.Year(); y != tc.year {
			t.Errorf("%q: year = %d, want %d", tc.id, y, tc.year)
		}
	}
}
