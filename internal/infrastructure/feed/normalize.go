package feed

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberPattern = regexp.MustCompile(`[\d.]+`)
	digitsPattern = regexp.MustCompile(`\d+`)
)

// CleanRate extracts a percentage from messy feed text, e.g.
// "14.5% p.a." -> 14.5. Dashes of either kind mean "no rate offered".
func CleanRate(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "-" || trimmed == "–" {
		return 0, false
	}

	match := numberPattern.FindString(trimmed)
	if match == "" {
		return 0, false
	}

	rate, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	return rate, true
}

// ParseTermMonths converts a human term label to months, e.g.
// "1 Year" -> 12, "6 Months" -> 6. Anything else is unparsable.
func ParseTermMonths(text string) (int, bool) {
	lowered := strings.ToLower(text)

	match := digitsPattern.FindString(lowered)
	if match == "" {
		return 0, false
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}

	switch {
	case strings.Contains(lowered, "year"):
		return n * 12, true
	case strings.Contains(lowered, "month"):
		return n, true
	default:
		return 0, false
	}
}
