// Package numerology derives the Mulank, Bhagyank and Kua numbers from a birth
// date and gender. Every figure is a digit sum reduced into 1..9, where a
// remainder of 0 modulo 9 counts as 9.
package numerology

// Gender selects the Kua formula.
//
// Values are matched case-insensitively by ParseGender. There is deliberately
// no fallback value: an unrecognised gender is an error, never a third branch.
type Gender string

const (
	// Male uses Kua = (11 - yearSum) mod 9.
	Male Gender = "male"
	// Female uses Kua = (yearSum + 4) mod 9.
	Female Gender = "female"

	// DateSeparator separates the day, month and year components.
	DateSeparator = "-"
	// DateLayout is the human readable form of the accepted date layout.
	DateLayout = "DD-MM-YYYY"
)

// DerivedValues holds the three figures computed for one birth date.
// Each value is in 1..9.
type DerivedValues struct {
	// Mulank is the reduced digit sum of the day of month.
	Mulank int
	// Bhagyank is the reduced digit sum of the full date.
	Bhagyank int
	// Kua is the gender adjusted reduced digit sum of the year.
	// It is reported but never contributes to the grid.
	Kua int
}

// Genders returns the recognised genders in a stable order.
func Genders() []Gender {
	return []Gender{Male, Female}
}
