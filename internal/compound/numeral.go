package compound

import "strconv"

// normalizeDay converts a matched day token into a day of month in [1,31].
// Positional digits are tried first, then the language's word-numeral table
// when it has one. Out-of-range values are rejected here rather than clamped;
// clamping against the target month's length is a calendar concern handled by
// ResolveMonthDay.
func normalizeDay(token string, numbers map[string]int) (int, error) {
	if n, err := strconv.Atoi(token); err == nil {
		if n < 1 || n > 31 {
			return 0, ErrInvalidNumeral
		}
		return n, nil
	}
	if numbers != nil {
		if n, ok := numbers[token]; ok {
			return n, nil
		}
	}
	return 0, ErrInvalidNumeral
}
