package waste

import "errors"

var (
	// ErrAddressNotFound means no line of the fetched schedule starts with the
	// configured address code.
	ErrAddressNotFound = errors.New("no result found for specified property")
	// ErrMalformedLine means the matched line lacks the comma-separated data field.
	ErrMalformedLine = errors.New("schedule line has no coded data field")
	// ErrMalformedLength means the coded run is not a whole number of tokens.
	ErrMalformedLength = errors.New("coded string length not a multiple of 5")
	// ErrInvalidDigit means a date code contains a character outside base 36.
	ErrInvalidDigit = errors.New("date code contains invalid base-36 digit")
	// ErrDateEncoding means the decoded value does not expand to 6 decimal digits.
	ErrDateEncoding = errors.New("date code does not expand to yymmdd")
	// ErrCalendarDate means yymmdd names a day that does not exist.
	ErrCalendarDate = errors.New("date code names an invalid calendar date")
)
