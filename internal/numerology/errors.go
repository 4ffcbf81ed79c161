package numerology

import "errors"

var (
	// ErrInvalidDateFormat is returned when a date string is not DD-MM-YYYY
	// with numeric components forming a real calendar day.
	ErrInvalidDateFormat = errors.New("invalid date format")
	// ErrInvalidGender is returned for anything other than male or female.
	ErrInvalidGender = errors.New("invalid gender")
	// ErrInvalidDigitInput is returned when a digit sum is asked for an empty
	// or non-numeric sequence.
	ErrInvalidDigitInput = errors.New("invalid digit input")
)
