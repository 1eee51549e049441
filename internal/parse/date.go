package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var canonicalDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Layouts accepted for non-canonical date input, tried in order.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"2 January 2006",
	time.RFC1123,
}

// NormalizeDate converts a client-supplied date representation to canonical
// "YYYY-MM-DD" form. A string already in canonical form is used verbatim;
// anything else is parsed and converted to a UTC calendar date. Unparseable
// input is an error.
func NormalizeDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}

	if canonicalDateRe.MatchString(s) {
		// Still reject impossible dates like 2024-02-31.
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return "", fmt.Errorf("invalid date %q", s)
		}
		return s, nil
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unable to parse date: %q", raw)
}
