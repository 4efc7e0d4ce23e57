package advisory

import (
	"fmt"

	"github.com/quay/pkgaudit"
)

// Category is one of the closed set of vulnerability categories advisories
// may be filed under.
type Category int

const (
	CryptographicFailure Category = iota
	DenialOfService
	FileDisclosure
	FormatInjection
	MemoryCorruption
	MemoryExposure
	PrivilegeEscalation
	RemoteCodeExecution
	CodeExecutionUntrustedInput
	ThreadSafety
	ParserRegression
)

var categoryName = map[Category]string{
	CryptographicFailure:         "cryptographic-failure",
	DenialOfService:              "denial-of-service",
	FileDisclosure:               "file-disclosure",
	FormatInjection:              "format-injection",
	MemoryCorruption:             "memory-corruption",
	MemoryExposure:               "memory-exposure",
	PrivilegeEscalation:          "privilege-escalation",
	RemoteCodeExecution:          "remote-code-execution",
	CodeExecutionUntrustedInput:  "code-execution-untrusted-input",
	ThreadSafety:                 "thread-safety",
	ParserRegression:             "parser-regression",
}

func (c Category) String() string {
	if s, ok := categoryName[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCategory parses the kebab-case category name.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryName {
		if name == s {
			return c, nil
		}
	}
	return 0, &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: "advisory.ParseCategory", Message: fmt.Sprintf("invalid category: %s", s)}
}
