// Package loshu annotates the Lo Shu magic square with the digits of a birth
// date.
//
// The reference grid is fixed:
//
//	4 9 2
//	3 5 7
//	8 1 6
//
// A DigitMultiset counts the date digits together with Mulank and Bhagyank
// (Kua is reported elsewhere but never counted). Annotate turns the counts into
// an AnnotatedGrid where each cell repeats its reference number once per
// occurrence, and DigitMultiset.Missing lists the digits 1..9 that never
// occur.
//
// Example:
//
//	m, _ := loshu.NewDigitMultiset(append(date.Digits(), mulank, bhagyank)...)
//	grid := loshu.Annotate(m)
//	fmt.Println(grid.Cell(0, 1)) // "99" for 22-10-1991
//	fmt.Println(m.Missing())     // [3 5 6 8]
package loshu
