package advisory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quay/pkgaudit"
)

// Date is a validated advisory date in YYYY-MM-DD form.
type Date struct {
	s string
}

// ParseDate validates and wraps an RFC 3339 calendar date.
func ParseDate(s string) (Date, error) {
	if err := validateDate(s); err != nil {
		return Date{}, err
	}
	return Date{s: s}, nil
}

func (d Date) String() string { return d.s }

func validateDate(s string) error {
	const op = "advisory.ParseDate"
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: fmt.Sprintf("invalid date: %s", s)}
	}
	year, month, day := parts[0], parts[1], parts[2]
	if len(year) != 4 {
		return &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: fmt.Sprintf("malformed year: %s", s)}
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < yearMin || y > yearMax {
		return &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: fmt.Sprintf("malformed year: %s", s)}
	}
	if len(month) != 2 {
		return &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: fmt.Sprintf("malformed month: %s", s)}
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: fmt.Sprintf("malformed month: %s", s)}
	}
	if len(day) != 2 {
		return &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: fmt.Sprintf("malformed day: %s", s)}
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		return &pkgaudit.Error{Kind: pkgaudit.ErrParse, Op: op, Message: fmt.Sprintf("malformed day: %s", s)}
	}
	return nil
}
