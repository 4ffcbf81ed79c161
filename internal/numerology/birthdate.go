package numerology

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minYear = 1
	maxYear = 9999
)

// componentWidths caps the day, month and year at the DD-MM-YYYY widths.
var componentWidths = [3]int{2, 2, 4}

// BirthDate is a parsed DD-MM-YYYY date. The zero value is not valid; use
// ParseBirthDate.
type BirthDate struct {
	day   int
	month int
	year  int
	raw   string
}

// ParseBirthDate parses a DD-MM-YYYY date. Components may omit leading zeros
// ("1-1-1991") but may not be wider than DD, MM or YYYY. They must be purely
// numeric, in range, and together name a real calendar day. The original
// text is kept so that its digits, including any leading zeros, can
// contribute to the grid.
func ParseBirthDate(s string) (BirthDate, error) {
	if s == "" {
		return BirthDate{}, fmt.Errorf("%w: empty date, expected %s", ErrInvalidDateFormat, DateLayout)
	}

	parts := strings.Split(s, DateSeparator)
	if len(parts) != 3 {
		return BirthDate{}, fmt.Errorf("%w: %q has %d components, expected %s",
			ErrInvalidDateFormat, s, len(parts), DateLayout)
	}

	values := make([]int, 3)
	for i, part := range parts {
		v, err := parseComponent(part, componentWidths[i])
		if err != nil {
			return BirthDate{}, fmt.Errorf("%w: %q: %v", ErrInvalidDateFormat, s, err)
		}
		values[i] = v
	}
	day, month, year := values[0], values[1], values[2]

	if month < 1 || month > 12 {
		return BirthDate{}, fmt.Errorf("%w: %q: month %d out of range", ErrInvalidDateFormat, s, month)
	}
	if year < minYear || year > maxYear {
		return BirthDate{}, fmt.Errorf("%w: %q: year %d out of range", ErrInvalidDateFormat, s, year)
	}
	if day < 1 || day > daysIn(month, year) {
		return BirthDate{}, fmt.Errorf("%w: %q: day %d out of range", ErrInvalidDateFormat, s, day)
	}

	return BirthDate{day: day, month: month, year: year, raw: s}, nil
}

// parseComponent accepts a non-empty run of at most width ASCII digits.
// strconv.Atoi alone would also accept signs.
func parseComponent(part string, width int) (int, error) {
	if part == "" {
		return 0, fmt.Errorf("empty component")
	}
	if len(part) > width {
		return 0, fmt.Errorf("component %q wider than %d digits", part, width)
	}
	for _, r := range part {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-numeric component %q", part)
		}
	}
	return strconv.Atoi(part)
}

func daysIn(month, year int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Day returns the day of month.
func (b BirthDate) Day() int { return b.day }

// Month returns the month, 1..12.
func (b BirthDate) Month() int { return b.month }

// Year returns the year.
func (b BirthDate) Year() int { return b.year }

// String returns the date as it was given.
func (b BirthDate) String() string { return b.raw }

// DigitString returns the date text with separators removed.
func (b BirthDate) DigitString() string {
	return strings.ReplaceAll(b.raw, DateSeparator, "")
}

// Digits returns every digit of the date text in order, separators removed.
func (b BirthDate) Digits() []int {
	digits, err := Digits(b.DigitString())
	if err != nil {
		// ParseBirthDate only admits digits and separators.
		return nil
	}
	return digits
}

// Time returns the date at midnight UTC.
func (b BirthDate) Time() time.Time {
	return time.Date(b.year, time.Month(b.month), b.day, 0, 0, 0, 0, time.UTC)
}
