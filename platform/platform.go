// Package platform implements a static catalog of target triples and a
// glob-like requirement matcher over them, used to scope advisories and
// queries by architecture and operating system.
package platform

import (
	"strings"

	"github.com/quay/pkgaudit"
)

// Arch is a target CPU architecture.
type Arch string

const (
	AArch64   Arch = "aarch64"
	Arm       Arch = "arm"
	Mips      Arch = "mips"
	Mips64    Arch = "mips64"
	PowerPC   Arch = "powerpc"
	PowerPC64 Arch = "powerpc64"
	RiscV     Arch = "riscv"
	S390X     Arch = "s390x"
	Wasm32    Arch = "wasm32"
	X86       Arch = "x86"
	X86_64    Arch = "x86_64"
)

// OS is a target operating system.
type OS string

const (
	Android OS = "android"
	Dragonfly OS = "dragonfly"
	FreeBSD   OS = "freebsd"
	Fuchsia   OS = "fuchsia"
	IOS       OS = "ios"
	Linux     OS = "linux"
	MacOS     OS = "macos"
	NetBSD    OS = "netbsd"
	OpenBSD   OS = "openbsd"
	Solaris   OS = "solaris"
	Windows   OS = "windows"
	None      OS = "none"
)

// Env is a target environment/ABI, used only to disambiguate platforms
// that otherwise share an arch/OS pair.
type Env string

const (
	EnvNone  Env = ""
	EnvGNU   Env = "gnu"
	EnvMUSL  Env = "musl"
	EnvMSVC  Env = "msvc"
	EnvSGX   Env = "sgx"
	EnvUWP   Env = "uwp"
)

// Tier is the support level rustc-style toolchains advertise for a
// platform.
type Tier int

const (
	Tier1 Tier = iota + 1
	Tier2
	Tier3
)

// Endian is the target's byte order.
type Endian string

const (
	Little Endian = "little"
	Big    Endian = "big"
)

// Platform is one entry in the static target catalog.
type Platform struct {
	TargetTriple string
	Arch         Arch
	OS           OS
	Env          Env
	PointerWidth int
	Endian       Endian
	Tier         Tier
}

// All is the static catalog of known platforms, grounded on the upstream
// tier1/tier2/tier3 target tables.
var All = []Platform{
	{"aarch64-unknown-linux-gnu", AArch64, Linux, EnvGNU, 64, Little, Tier1},
	{"i686-pc-windows-gnu", X86, Windows, EnvGNU, 32, Little, Tier1},
	{"i686-pc-windows-msvc", X86, Windows, EnvMSVC, 32, Little, Tier1},
	{"i686-unknown-linux-gnu", X86, Linux, EnvGNU, 32, Little, Tier1},
	{"x86_64-apple-darwin", X86_64, MacOS, EnvNone, 64, Little, Tier1},
	{"x86_64-pc-windows-gnu", X86_64, Windows, EnvGNU, 64, Little, Tier1},
	{"x86_64-pc-windows-msvc", X86_64, Windows, EnvMSVC, 64, Little, Tier1},
	{"x86_64-unknown-linux-gnu", X86_64, Linux, EnvGNU, 64, Little, Tier1},

	{"aarch64-apple-darwin", AArch64, MacOS, EnvNone, 64, Little, Tier2},
	{"aarch64-apple-ios", AArch64, IOS, EnvNone, 64, Little, Tier2},
	{"aarch64-pc-windows-msvc", AArch64, Windows, EnvMSVC, 64, Little, Tier2},
	{"aarch64-linux-android", AArch64, Android, EnvNone, 64, Little, Tier2},
	{"aarch64-fuchsia", AArch64, Fuchsia, EnvNone, 64, Little, Tier2},
	{"aarch64-unknown-linux-musl", AArch64, Linux, EnvMUSL, 64, Little, Tier2},
	{"arm-linux-androideabi", Arm, Android, EnvNone, 32, Little, Tier2},
	{"arm-unknown-linux-gnueabi", Arm, Linux, EnvGNU, 32, Little, Tier2},
	{"arm-unknown-linux-gnueabihf", Arm, Linux, EnvGNU, 32, Little, Tier2},
	{"arm-unknown-linux-musleabi", Arm, Linux, EnvMUSL, 32, Little, Tier2},
	{"arm-unknown-linux-musleabihf", Arm, Linux, EnvMUSL, 32, Little, Tier2},
	{"i586-pc-windows-msvc", X86, Windows, EnvMSVC, 32, Little, Tier2},
	{"i586-unknown-linux-gnu", X86, Linux, EnvGNU, 32, Little, Tier2},
	{"i586-unknown-linux-musl", X86, Linux, EnvMUSL, 32, Little, Tier2},
	{"i686-linux-android", X86, Android, EnvNone, 32, Little, Tier2},
	{"i686-unknown-freebsd", X86, FreeBSD, EnvNone, 32, Little, Tier2},
	{"i686-unknown-linux-musl", X86, Linux, EnvMUSL, 32, Little, Tier2},
	{"mips-unknown-linux-gnu", Mips, Linux, EnvGNU, 32, Big, Tier2},
	{"mips-unknown-linux-musl", Mips, Linux, EnvMUSL, 32, Big, Tier2},
	{"mips64-unknown-linux-gnuabi64", Mips64, Linux, EnvGNU, 64, Big, Tier2},
	{"mips64-unknown-linux-muslabi64", Mips64, Linux, EnvMUSL, 64, Big, Tier2},
	{"powerpc-unknown-linux-gnu", PowerPC, Linux, EnvGNU, 32, Big, Tier2},
	{"powerpc64-unknown-linux-gnu", PowerPC64, Linux, EnvGNU, 64, Big, Tier2},
	{"powerpc64le-unknown-linux-musl", PowerPC64, Linux, EnvMUSL, 64, Little, Tier2},
	{"s390x-unknown-linux-gnu", S390X, Linux, EnvGNU, 64, Big, Tier2},
	{"s390x-unknown-linux-musl", S390X, Linux, EnvMUSL, 64, Big, Tier2},
	{"wasm32-unknown-unknown", Wasm32, None, EnvNone, 32, Little, Tier2},
	{"x86_64-linux-android", X86_64, Android, EnvNone, 64, Little, Tier2},
	{"x86_64-unknown-freebsd", X86_64, FreeBSD, EnvNone, 64, Little, Tier2},
	{"x86_64-unknown-linux-musl", X86_64, Linux, EnvMUSL, 64, Little, Tier2},
	{"x86_64-unknown-netbsd", X86_64, NetBSD, EnvNone, 64, Little, Tier2},
	{"aarch64-uwp-windows-msvc", AArch64, Windows, EnvUWP, 64, Little, Tier2},

	{"sparc-unknown-linux-gnu", Arch("sparc"), Linux, EnvGNU, 32, Big, Tier3},
	{"sparc64-unknown-linux-gnu", Arch("sparc64"), Linux, EnvGNU, 64, Big, Tier3},
	{"sparc64-unknown-netbsd", Arch("sparc64"), NetBSD, EnvNone, 64, Big, Tier3},
	{"sparcv9-sun-solaris", Arch("sparc64"), Solaris, EnvNone, 64, Big, Tier3},
	{"riscv64gc-unknown-linux-gnu", RiscV, Linux, EnvGNU, 64, Little, Tier3},
	{"x86_64-unknown-illumos", X86_64, OS("illumos"), EnvNone, 64, Little, Tier3},
	{"x86_64-unknown-dragonfly", X86_64, Dragonfly, EnvNone, 64, Little, Tier3},
}

// ByTriple looks up a platform by its exact target triple.
func ByTriple(triple string) (Platform, bool) {
	for _, p := range All {
		if p.TargetTriple == triple {
			return p, true
		}
	}
	return Platform{}, false
}

// Wildcard is the glob character recognized by [Req].
const Wildcard = '*'

// Req is a glob-like target requirement: at most one leading and one
// trailing '*'. It matches literally, by prefix, by suffix, or by
// substring depending on which wildcards are present.
type Req struct {
	raw string
}

// ParseReq validates req and wraps it. A requirement is valid only if it
// matches at least one known platform's target triple.
func ParseReq(req string) (Req, error) {
	r := Req{raw: req}
	if req == "" {
		return Req{}, &pkgaudit.Error{Kind: pkgaudit.ErrBadParam, Op: "platform.ParseReq", Message: "empty platform requirement"}
	}
	if len(r.Matching()) == 0 {
		return Req{}, &pkgaudit.Error{Kind: pkgaudit.ErrBadParam, Op: "platform.ParseReq", Message: "platform requirement matches no known platform: " + req}
	}
	return r, nil
}

func (r Req) String() string { return r.raw }

// Matches reports whether r matches p's target triple.
func (r Req) Matches(p Platform) bool {
	s := r.raw
	if len(s) == 1 && s[0] == Wildcard {
		return true
	}
	startsWild := len(s) > 0 && s[0] == Wildcard
	endsWild := len(s) > 0 && s[len(s)-1] == Wildcard
	triple := p.TargetTriple

	switch {
	case startsWild && endsWild && len(s) >= 2:
		return strings.Contains(triple, s[1:len(s)-1])
	case startsWild:
		return strings.HasSuffix(triple, s[1:])
	case endsWild:
		return strings.HasPrefix(triple, s[:len(s)-1])
	default:
		return s == triple
	}
}

// Matching expands r into every catalog entry it matches.
func (r Req) Matching() []Platform {
	var out []Platform
	for _, p := range All {
		if r.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}
