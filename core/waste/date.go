package waste

import (
	"fmt"
	"strconv"
	"time"
)

// DecodeDate converts a 4-character base-36 date code to a civil date. The
// decoded integer must render as exactly six decimal digits, read as yymmdd
// with the year offset from 2000. The result is pinned to UTC midnight.
func DecodeDate(code string) (time.Time, error) {
	n, err := strconv.ParseUint(code, 36, 32)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDigit, code)
	}
	digits := strconv.FormatUint(n, 10)
	if len(digits) != 6 {
		return time.Time{}, fmt.Errorf("%w: %q decodes to %s", ErrDateEncoding, code, digits)
	}
	// The three Atoi calls cannot fail on a 6-digit decimal string.
	yy, _ := strconv.Atoi(digits[0:2])
	mm, _ := strconv.Atoi(digits[2:4])
	dd, _ := strconv.Atoi(digits[4:6])

	year := 2000 + yy
	d := time.Date(year, time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components, so a round-trip mismatch
	// means the encoded day does not exist.
	if d.Year() != year || d.Month() != time.Month(mm) || d.Day() != dd {
		return time.Time{}, fmt.Errorf("%w: %q decodes to %s", ErrCalendarDate, code, digits)
	}
	return d, nil
}
