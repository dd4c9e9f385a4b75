package pipeline

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aaronyao/dateparser/internal/compound"
)

// offsetPattern matches signed day/week/month offsets such as "+3d" or "-2w".
var offsetPattern = regexp.MustCompile(`^([+-]\d{1,3})([dwm])$`)

// absoluteLayouts are tried in order by the absolute stage. Date-only layouts
// come after the date-time ones so "2024-01-15 14:30:00" is not truncated.
var absoluteLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02 Jan 2006",
	"Jan 2, 2006",
}

// parseRelative handles single-token relative words and signed offsets,
// preserving base's time of day. Month offsets reuse the compound engine's
// whole-month arithmetic so the clamping policy is identical across stages.
func parseRelative(text string, base time.Time) (time.Time, bool) {
	switch strings.ToLower(text) {
	case "today", "now":
		return base, true
	case "yesterday":
		return base.AddDate(0, 0, -1), true
	case "tomorrow":
		return base.AddDate(0, 0, 1), true
	case "next-week", "next week":
		return base.AddDate(0, 0, 7), true
	case "last-week", "last week":
		return base.AddDate(0, 0, -7), true
	}

	m := offsetPattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	switch m[2] {
	case "d":
		return base.AddDate(0, 0, n), true
	case "w":
		return base.AddDate(0, 0, n*7), true
	default: // "m"
		return compound.ResolveMonthDay(base, n, base.Day()), true
	}
}

// parseAbsolute tries RFC 3339 first (it carries its own zone), then the
// fixed layout list interpreted in the parser's location.
func parseAbsolute(text string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, text); err == nil {
		return t, true
	}
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseTimestamp handles 10-digit Unix seconds and 13-digit milliseconds.
func parseTimestamp(text string) (time.Time, bool) {
	if len(text) != 10 && len(text) != 13 {
		return time.Time{}, false
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	if len(text) == 13 {
		return time.UnixMilli(n), true
	}
	return time.Unix(n, 0), true
}
