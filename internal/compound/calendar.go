package compound

import "time"

// mondayIndex returns the weekday of t under the Monday=0 convention used by
// every language table.
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ResolveWeekday returns the named weekday of the week weekOffset weeks away
// from base, preserving base's time of day and location. The target weekday
// within the current week is the anchor before the week offset is applied, so
// "last friday" seen from a Monday lands 3 days back, not a full week.
func ResolveWeekday(base time.Time, weekOffset, targetWeekday int) time.Time {
	daysToTarget := targetWeekday - mondayIndex(base)
	return base.AddDate(0, 0, daysToTarget+weekOffset*7)
}

// ResolveMonthDay returns the given day of the month monthOffset whole months
// away from base, preserving base's time of day and location. Year rollover
// carries in both directions. A day beyond the target month's length clamps
// to that month's last day.
func ResolveMonthDay(base time.Time, monthOffset, day int) time.Time {
	year := base.Year()
	month := int(base.Month()) - 1 + monthOffset
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}

	if max := daysInMonth(year, time.Month(month+1)); day > max {
		day = max
	}

	return time.Date(year, time.Month(month+1), day,
		base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())
}

// daysInMonth returns the length of the given month in the Gregorian calendar.
func daysInMonth(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// isLeapYear reports whether year is a Gregorian leap year.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
