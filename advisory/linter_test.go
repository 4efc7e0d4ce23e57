package advisory

import "testing"

func TestLinterClean(t *testing.T) {
	l, err := LintString(sampleAdvisory, CollectionCrates)
	if err != nil {
		t.Fatal(err)
	}
	if errs := l.Errors(); len(errs) != 0 {
		t.Errorf("expected no lint errors, got %+v", errs)
	}
}

func TestLinterUnknownKey(t *testing.T) {
	doc := "```toml\n" + `[advisory]
id = "RUSTSEC-2019-0001"
package = "acme"
collection = "crates"

[versions]
patched = [">= 1.2.4"]
` + "```" + "\n\n# title\n\nbody\n"

	l, err := LintString(doc, CollectionCrates)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, e := range l.Errors() {
		if e.Section == "advisory" && e.Kind.Malformed {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a 'collection shouldn't be explicit' lint error, got %+v", l.Errors())
	}
}

func TestLinterBadURL(t *testing.T) {
	doc := "```toml\n" + `[advisory]
id = "RUSTSEC-2019-0001"
package = "acme"
url = "http://insecure.example/advisory"

[versions]
patched = [">= 1.2.4"]
` + "```" + "\n\n# title\n\nbody\n"

	l, err := LintString(doc, CollectionCrates)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, e := range l.Errors() {
		if e.Section == "advisory" && e.Kind.Key == "url" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a url lint error, got %+v", l.Errors())
	}
}
