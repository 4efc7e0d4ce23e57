package advisory

// Informational categorizes advisories that don't represent an immediate
// vulnerability in the package itself but are still worth surfacing to
// users: a security notice, an unmaintained-crate warning, an unsound-API
// warning, or some other open-ended tag.
type Informational struct {
	tag string
}

// Recognized informational tags.
var (
	Notice       = Informational{"notice"}
	Unmaintained = Informational{"unmaintained"}
	Unsound      = Informational{"unsound"}
)

// OtherInformational wraps an informational tag outside the recognized set.
func OtherInformational(s string) Informational { return Informational{s} }

func (i Informational) String() string { return i.tag }

// ParseInformational parses s into a recognized tag or an open-ended other.
func ParseInformational(s string) Informational {
	switch s {
	case Notice.tag:
		return Notice
	case Unmaintained.tag:
		return Unmaintained
	case Unsound.tag:
		return Unsound
	default:
		return Informational{s}
	}
}

// IsOther reports whether the tag falls outside the recognized set.
func (i Informational) IsOther() bool {
	return i != Notice && i != Unmaintained && i != Unsound
}
