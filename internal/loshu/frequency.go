package loshu

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/numerology-dev/loshu-grid/internal/numerology"
)

// DigitMultiset counts occurrences of each decimal digit, indexed by digit.
type DigitMultiset [10]int

// DigitFrequency is one entry of DigitMultiset.Frequencies.
type DigitFrequency struct {
	Digit int
	Count int
}

// NewDigitMultiset counts digits. Every value must be in 0..9.
func NewDigitMultiset(digits ...int) (DigitMultiset, error) {
	var m DigitMultiset
	for _, d := range digits {
		if d < 0 || d > 9 {
			return DigitMultiset{}, fmt.Errorf("%w: %d is not a single digit", numerology.ErrInvalidDigitInput, d)
		}
		m[d]++
	}
	return m, nil
}

// Count returns the occurrences of d, or 0 when d is not a digit.
func (m DigitMultiset) Count(d int) int {
	if d < 0 || d > 9 {
		return 0
	}
	return m[d]
}

// Has reports whether d occurs at least once.
func (m DigitMultiset) Has(d int) bool {
	return m.Count(d) > 0
}

// Total returns the number of counted digits.
func (m DigitMultiset) Total() int {
	total := 0
	for _, c := range m {
		total += c
	}
	return total
}

// Frequencies returns the digits that occur, ascending, with their counts.
// Digit 0 is included when present.
func (m DigitMultiset) Frequencies() []DigitFrequency {
	out := make([]DigitFrequency, 0, len(m))
	for d, c := range m {
		if c > 0 {
			out = append(out, DigitFrequency{Digit: d, Count: c})
		}
	}
	return out
}

// Missing returns the digits 1..9 that do not occur, ascending. Zero is never
// reported as missing.
func (m DigitMultiset) Missing() []int {
	present := sets.New[int]()
	for d, c := range m {
		if c > 0 {
			present.Insert(d)
		}
	}
	return sets.List(allDigits.Difference(present))
}

var allDigits = sets.New(1, 2, 3, 4, 5, 6, 7, 8, 9)

// Analysis is the grid side of a reading.
type Analysis struct {
	Multiset DigitMultiset
	Missing  []int
	Grid     AnnotatedGrid
}

// Analyze counts the date digits plus Mulank and Bhagyank and derives the
// missing digits and annotated grid from that single multiset. Kua is
// intentionally not an input.
func Analyze(dateDigits []int, mulank, bhagyank int) (Analysis, error) {
	digits := make([]int, 0, len(dateDigits)+2)
	digits = append(digits, dateDigits...)
	digits = append(digits, mulank, bhagyank)

	m, err := NewDigitMultiset(digits...)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{
		Multiset: m,
		Missing:  m.Missing(),
		Grid:     Annotate(m),
	}, nil
}
