package lockfile

import (
	"strings"
	"testing"

	"github.com/quay/pkgaudit"
)

const newerSample = `version = 3

[[package]]
name = "acme"
version = "1.2.3"
source = "registry+https://example.com"
checksum = "abc123"
dependencies = [
 "leftpad 1.0.0",
]

[[package]]
name = "leftpad"
version = "1.0.0"
source = "registry+https://example.com"
checksum = "def456"
`

const olderSample = `
[[package]]
name = "acme"
version = "1.2.3"
source = "registry+https://example.com"
dependencies = [
 "leftpad 1.0.0 (registry+https://example.com)",
]

[[package]]
name = "leftpad"
version = "1.0.0"
source = "registry+https://example.com"

[metadata]
"checksum acme 1.2.3 (registry+https://example.com)" = "abc123"
"checksum leftpad 1.0.0 (registry+https://example.com)" = "def456"
`

func TestParseNewerDialect(t *testing.T) {
	lf, err := Parse([]byte(newerSample))
	if err != nil {
		t.Fatal(err)
	}
	if lf.Version != V2 {
		t.Errorf("version = %v, want V2", lf.Version)
	}
	if len(lf.Packages) != 2 {
		t.Fatalf("packages = %+v", lf.Packages)
	}
	acme := lf.Packages[0]
	if acme.Name != "acme" || acme.Checksum == nil || *acme.Checksum != "abc123" {
		t.Errorf("acme = %+v", acme)
	}
	if len(acme.Dependencies) != 1 || acme.Dependencies[0].Name != "leftpad" {
		t.Fatalf("acme deps = %+v", acme.Dependencies)
	}
	if acme.Dependencies[0].Version == nil || acme.Dependencies[0].Version.String() != "1.0.0" {
		t.Errorf("resolved dep version = %+v", acme.Dependencies[0].Version)
	}
}

func TestParseOlderDialect(t *testing.T) {
	lf, err := Parse([]byte(olderSample))
	if err != nil {
		t.Fatal(err)
	}
	if lf.Version != V1 {
		t.Errorf("version = %v, want V1", lf.Version)
	}
	acme := lf.Packages[0]
	if acme.Checksum == nil || *acme.Checksum != "abc123" {
		t.Errorf("acme checksum = %+v", acme.Checksum)
	}
	leftpad := lf.Packages[1]
	if leftpad.Checksum == nil || *leftpad.Checksum != "def456" {
		t.Errorf("leftpad checksum = %+v", leftpad.Checksum)
	}
}

// TestUnresolvableDependency encodes the ambiguous-abbreviated-reference
// scenario: two packages named "shared" at different versions, and a
// dependency written as just "shared" with no version to disambiguate.
func TestUnresolvableDependency(t *testing.T) {
	const doc = `version = 3

[[package]]
name = "root"
version = "0.1.0"
dependencies = [
 "shared",
]

[[package]]
name = "shared"
version = "1.0.0"

[[package]]
name = "shared"
version = "2.0.0"
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("expected an unresolvable-dependency error")
	}
	var pe *pkgaudit.Error
	if !asError(err, &pe) {
		t.Fatalf("error is not *pkgaudit.Error: %v", err)
	}
	if pe.Kind != pkgaudit.ErrNotFound {
		t.Errorf("kind = %v, want ErrNotFound", pe.Kind)
	}
	if !strings.Contains(pe.Message, "shared") {
		t.Errorf("message = %q", pe.Message)
	}
}

func asError(err error, target **pkgaudit.Error) bool {
	pe, ok := err.(*pkgaudit.Error)
	if !ok {
		return false
	}
	*target = pe
	return true
}

func TestEmitRoundTrip(t *testing.T) {
	lf, err := Parse([]byte(newerSample))
	if err != nil {
		t.Fatal(err)
	}
	out := Emit(lf)
	lf2, err := Parse([]byte(out))
	if err != nil {
		t.Fatalf("re-parse of emitted lockfile failed: %v\n%s", err, out)
	}
	if len(lf2.Packages) != len(lf.Packages) {
		t.Errorf("round-trip package count = %d, want %d", len(lf2.Packages), len(lf.Packages))
	}
}

func TestGraphWalk(t *testing.T) {
	lf, err := Parse([]byte(newerSample))
	if err != nil {
		t.Fatal(err)
	}
	g := NewGraph(lf)
	acme := lf.Packages[0]
	deps := g.Dependencies(acme)
	if len(deps) != 1 || deps[0].Name != "leftpad" {
		t.Fatalf("deps = %+v", deps)
	}
	leftpad := lf.Packages[1]
	dependents := g.Dependents(leftpad)
	if len(dependents) != 1 || dependents[0].Name != "acme" {
		t.Fatalf("dependents = %+v", dependents)
	}

	var visited []string
	g.Walk(acme, true, func(p Package) bool {
		visited = append(visited, p.Name)
		return true
	})
	if len(visited) != 2 {
		t.Errorf("visited = %v", visited)
	}
}
