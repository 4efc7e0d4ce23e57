// Package pkgaudit implements a security-advisory toolchain for a package
// ecosystem: version-range algebra, CVSS scoring, an advisory database, a
// lockfile dependency graph, report generation, and a standardized
// interchange exporter.
//
// Sub-packages implement each concern; this package holds the shared error
// domain type used throughout the module.
package pkgaudit

import (
	"errors"
	"strings"
)

// Error is the pkgaudit error domain type.
//
// Errors coming from pkgaudit components should be inspectable ([errors.As])
// as an *Error at some point in the error chain.
//
// Implementers of pkgaudit components should create an Error at the system
// boundary (e.g. when using the filesystem or parsing untrusted input) and
// intermediate layers should not wrap in another Error except to add
// additional [ErrorKind] information. That is to say, use [fmt.Errorf] with a
// "%w" verb in preference to creating a containing Error.
type Error struct {
	Inner   error
	Kind    ErrorKind
	Message string
	Op      string
}

var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(" ")
	}
	b.WriteString("[")
	switch e.Kind {
	case ErrIO, ErrParse, ErrBadParam, ErrVersion, ErrNotFound, ErrRegistry, ErrLinter, ErrCancelled:
		b.WriteString(string(e.Kind))
	default:
		b.WriteString("???")
	}
	b.WriteString("]: ")
	if e.Message != "" {
		b.WriteString(e.Message)
	}
	if e.Message != "" && e.Inner != nil {
		b.WriteString(": ")
	}
	if e.Op == "" && e.Message == "" {
		b.Reset()
	}
	if e.Inner != nil {
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Is enables [errors.Is].
//
// It compares the error kind. Callers should compare against a declared
// [ErrorKind] over a specific error.
func (e *Error) Is(kind error) bool {
	return errors.Is(e.Kind, kind)
}

// Unwrap enables [errors.Unwrap].
func (e *Error) Unwrap() error {
	return e.Inner
}

// ErrorKind represents classes of errors to be checked against, per the
// taxonomy: filesystem I/O, malformed input, bad caller parameters, version
// algebra failures, missing lookups, yank-oracle/registry failures, and
// non-fatal advisory lint failures.
type ErrorKind string

// Defined error kinds.
var (
	ErrIO        = ErrorKind("io")        // filesystem read/write failure
	ErrParse     = ErrorKind("parse")     // malformed input
	ErrBadParam  = ErrorKind("bad-param") // caller supplied invalid arguments
	ErrVersion   = ErrorKind("version")   // version or version-requirement algebra failure
	ErrNotFound  = ErrorKind("not-found") // id or package not resolvable
	ErrRegistry  = ErrorKind("registry")  // yank oracle failure
	ErrLinter    = ErrorKind("linter")    // advisory lint failure (non-fatal)
	ErrCancelled = ErrorKind("cancelled") // caller-observed cancellation
)

// Error implements error.
func (e ErrorKind) Error() string {
	return string(e)
}
