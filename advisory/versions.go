package advisory

import "github.com/quay/pkgaudit/version"

// Versions is the `[versions]` subsection of an advisory: which version
// requirements are patched and which were never affected in the first
// place.
type Versions struct {
	Patched    []version.VersionReq
	Unaffected []version.VersionReq
}

// IsVulnerable reports whether v is NOT covered by any patched or
// unaffected requirement.
func (vs Versions) IsVulnerable(v version.Version) bool {
	for _, req := range vs.Patched {
		if req.Matches(v) {
			return false
		}
	}
	for _, req := range vs.Unaffected {
		if req.Matches(v) {
			return false
		}
	}
	return true
}

// UnaffectedRanges normalizes the patched and unaffected requirements into
// the intermediate range representation used by the inversion algebra in
// package version.
func (vs Versions) UnaffectedRanges() ([]version.UnaffectedRange, error) {
	out := make([]version.UnaffectedRange, 0, len(vs.Patched)+len(vs.Unaffected))
	for _, req := range vs.Unaffected {
		r, err := version.VersionReqToUnaffectedRange(req)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	for _, req := range vs.Patched {
		r, err := version.VersionReqToUnaffectedRange(req)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// AffectedRanges computes the affected ranges for this advisory's
// versions section, per §4.1/§4.7 of the engine's inversion algebra.
func (vs Versions) AffectedRanges() ([]version.AffectedRange, error) {
	u, err := vs.UnaffectedRanges()
	if err != nil {
		return nil, err
	}
	return version.Invert(u)
}
