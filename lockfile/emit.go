package lockfile

import (
	"fmt"
	"sort"
	"strings"
)

const generatedHeader = "# This file is automatically @generated by pkgaudit.\n# It is not intended for manual editing.\n"

// Emit serializes the lockfile to its canonical on-disk text form. V2
// lockfiles write a dependency reference as the bare package name when no
// other package shares that name (otherwise as the full name, version and
// source) and store checksums inline; V1 lockfiles emit fully-qualified
// dependency references and collect checksums into the metadata table.
func Emit(lf Lockfile) string {
	var b strings.Builder
	b.WriteString(generatedHeader)
	b.WriteByte('\n')

	if lf.Version == V2 {
		fmt.Fprintf(&b, "version = 3\n\n")
	}

	packages := make([]Package, len(lf.Packages))
	copy(packages, lf.Packages)
	sort.Slice(packages, func(i, j int) bool {
		if packages[i].Name != packages[j].Name {
			return packages[i].Name < packages[j].Name
		}
		return packages[i].Version.Less(packages[j].Version)
	})

	metadata := map[string]string{}
	for k, v := range lf.Metadata {
		metadata[k] = v
	}

	for _, p := range packages {
		emitPackage(&b, "[[package]]", p, lf.Version, packages)
		if lf.Version == V1 && p.Checksum != nil {
			key := fmt.Sprintf("checksum %s %s (%s)", p.Name, p.Version.String(), derefOr(p.Source, ""))
			metadata[key] = *p.Checksum
		}
	}

	if lf.Root != nil {
		emitPackage(&b, "[root]", *lf.Root, lf.Version, packages)
	}

	for _, p := range lf.Patch.Unused {
		emitPackage(&b, "[[patch.unused]]", p, lf.Version, packages)
	}

	if len(metadata) > 0 {
		b.WriteString("[metadata]\n")
		for _, k := range sortedMetadataKeys(metadata) {
			fmt.Fprintf(&b, "%q = %q\n", k, metadata[k])
		}
	}

	return b.String()
}

func emitPackage(b *strings.Builder, header string, p Package, rv ResolveVersion, all []Package) {
	b.WriteString(header + "\n")
	fmt.Fprintf(b, "name = %q\n", p.Name)
	fmt.Fprintf(b, "version = %q\n", p.Version.String())
	if p.Source != nil {
		fmt.Fprintf(b, "source = %q\n", *p.Source)
	}
	if rv == V2 && p.Checksum != nil {
		fmt.Fprintf(b, "checksum = %q\n", *p.Checksum)
	}
	if len(p.Dependencies) > 0 {
		deps := make([]string, len(p.Dependencies))
		for i, d := range p.Dependencies {
			deps[i] = emitDependency(d, rv, all)
		}
		sort.Strings(deps)
		b.WriteString("dependencies = [\n")
		for _, d := range deps {
			fmt.Fprintf(b, " %q,\n", d)
		}
		b.WriteString("]\n")
	}
	if p.Replace != nil {
		fmt.Fprintf(b, "replace = %q\n", emitDependency(*p.Replace, rv, all))
	}
	b.WriteByte('\n')
}

// emitDependency renders a dependency reference, abbreviating it in the V2
// dialect when the name alone is unambiguous across the full package list.
func emitDependency(d Dependency, rv ResolveVersion, all []Package) string {
	if rv == V1 {
		return d.String()
	}
	count := 0
	for _, p := range all {
		if p.Name == d.Name {
			count++
		}
	}
	if count <= 1 {
		return d.Name
	}
	return d.String()
}
