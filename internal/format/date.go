package format

import (
	"strings"
	"time"
)

// Placeholder is rendered for absent dates.
const Placeholder = "-"

const (
	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date renders t as dd/mm/yyyy in t's own location.
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Placeholder
	}
	return t.Format(dateLayout)
}

// DateTime renders t as dd/mm/yyyy hh:mm in t's own location.
func DateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return Placeholder
	}
	return t.Format(dateTimeLayout)
}

// ParseISO parses the ISO-8601 shapes the API emits. Empty input yields nil.
func ParseISO(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, true
		}
	}
	return nil, false
}

// DateTimeString formats an ISO-8601 string; absent or unparseable input renders the placeholder.
func DateTimeString(s string) string {
	t, ok := ParseISO(s)
	if !ok {
		return Placeholder
	}
	return DateTime(t)
}
