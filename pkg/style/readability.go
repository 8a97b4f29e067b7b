package style

import (
	"strings"

	"github.com/matzehuels/fontify/pkg/errors"
)

// Readability rates how legible a style's output is.
type Readability string

const (
	ReadabilityHigh   Readability = "high"
	ReadabilityMedium Readability = "medium"
	ReadabilityLow    Readability = "low"
)

func (r Readability) rank() int {
	switch r {
	case ReadabilityHigh:
		return 2
	case ReadabilityMedium:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r is as readable as floor. Every rating is at
// least ReadabilityLow.
func (r Readability) AtLeast(floor Readability) bool {
	return r.rank() >= floor.rank()
}

// ParseMinReadability parses a filter level: "all" (or empty) and "low"
// admit everything, "medium" admits medium and high, "high" only high.
func ParseMinReadability(s string) (Readability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "low":
		return ReadabilityLow, nil
	case "medium":
		return ReadabilityMedium, nil
	case "high":
		return ReadabilityHigh, nil
	}
	return "", errors.New(errors.ErrCodeInvalidReadability,
		"unknown readability %q (want all, medium or high)", s)
}
