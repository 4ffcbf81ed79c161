package numerology

import (
	"fmt"
	"strconv"
	"strings"
)

// Mulank returns the reduced digit sum of the day of month alone.
func Mulank(day int) (int, error) {
	if day < 0 {
		return 0, fmt.Errorf("%w: negative day %d", ErrInvalidDigitInput, day)
	}
	return DigitSum(strconv.Itoa(day))
}

// Bhagyank returns the reduced digit sum of every digit in the date text.
// Separators are removed before summing.
func Bhagyank(dob string) (int, error) {
	return DigitSum(strings.ReplaceAll(dob, DateSeparator, ""))
}

// Kua returns the gender adjusted reduced digit sum of year.
func Kua(year int, g Gender) (int, error) {
	if year < 0 {
		return 0, fmt.Errorf("%w: negative year %d", ErrInvalidDigitInput, year)
	}
	yearSum, err := DigitSum(strconv.Itoa(year))
	if err != nil {
		return 0, err
	}

	switch g {
	case Female:
		return Reduce(yearSum + 4), nil
	case Male:
		// Reduce normalises a negative remainder before mapping 0 to 9.
		return Reduce(11 - yearSum), nil
	default:
		return 0, fmt.Errorf("%w: unsupported gender %q", ErrInvalidGender, g)
	}
}

// Derive computes all three figures for a parsed date.
func Derive(b BirthDate, g Gender) (DerivedValues, error) {
	mulank, err := Mulank(b.Day())
	if err != nil {
		return DerivedValues{}, fmt.Errorf("mulank: %w", err)
	}
	bhagyank, err := Bhagyank(b.String())
	if err != nil {
		return DerivedValues{}, fmt.Errorf("bhagyank: %w", err)
	}
	kua, err := Kua(b.Year(), g)
	if err != nil {
		return DerivedValues{}, fmt.Errorf("kua: %w", err)
	}
	return DerivedValues{Mulank: mulank, Bhagyank: bhagyank, Kua: kua}, nil
}
