package numerology

import "fmt"

// Reduce folds a non-negative digit total into 1..9: total mod 9, with 0
// becoming 9.
func Reduce(total int) int {
	r := total % 9
	if r < 0 {
		r += 9
	}
	if r == 0 {
		return 9
	}
	return r
}

// Digits converts a string of ASCII decimal digits into their integer values.
// Separators must already be stripped.
func Digits(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidDigitInput)
	}
	out := make([]int, 0, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q at offset %d in %q", ErrInvalidDigitInput, r, i, s)
		}
		out = append(out, int(r-'0'))
	}
	return out, nil
}

// DigitSum sums the digits of s and reduces the total with Reduce.
// Leading zeros do not change the result: DigitSum("007") == DigitSum("7").
func DigitSum(s string) (int, error) {
	digits, err := Digits(s)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, d := range digits {
		total += d
	}
	return Reduce(total), nil
}
