package validate

import (
	"math"
	"regexp"
	"strings"
)

var (
	// Mobile: digits with optional leading +, 7-15 digits
	reMobile = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	reID     = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Name trims and bounds a display/reconciliation name. The result keeps its
// original case: vegetable names are matched case-sensitively.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 64 {
		return "", false
	}
	return s, true
}

func Mobile(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reMobile.MatchString(s)
}

// ID validates a server-generated resource identifier from a URL segment.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Money reports whether v is usable as a price: strictly positive and finite.
func Money(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Quantity reports whether v is usable as a quantity. Fractional quantities
// are allowed (vegetables sell by weight).
func Quantity(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Address bounds free-form address text.
func Address(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 200 {
		return "", false
	}
	return s, true
}
