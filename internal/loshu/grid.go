package loshu

import (
	"strconv"
	"strings"
)

// GridSize is the number of rows and columns of the Lo Shu square.
const GridSize = 3

// AbsentMarker is the text shown for a cell whose number does not occur.
const AbsentMarker = "-"

// referenceGrid is the classic Lo Shu arrangement. Every row, column and
// diagonal sums to 15 and each of 1..9 appears exactly once.
var referenceGrid = [GridSize][GridSize]int{
	{4, 9, 2},
	{3, 5, 7},
	{8, 1, 6},
}

// ReferenceGrid returns a copy of the fixed Lo Shu arrangement.
func ReferenceGrid() [GridSize][GridSize]int {
	return referenceGrid
}

// CellKind tags the variant held by a Cell.
type CellKind int

const (
	// CellAbsent marks a reference number that does not occur.
	CellAbsent CellKind = iota
	// CellDigits marks a reference number that occurs at least once.
	CellDigits
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case CellAbsent:
		return "Absent"
	case CellDigits:
		return "Digits"
	default:
		return "CellKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is one annotated position of the grid.
type Cell struct {
	// Kind says whether Digits is meaningful.
	Kind CellKind
	// Reference is the Lo Shu number at this position.
	Reference int
	// Digits is Reference repeated once per occurrence; empty when absent.
	Digits string
}

// Present reports whether the reference number occurs.
func (c Cell) Present() bool {
	return c.Kind == CellDigits
}

// Count returns how many times the reference number occurs.
func (c Cell) Count() int {
	if !c.Present() {
		return 0
	}
	return len(c.Digits)
}

// String returns the repeated digits, or AbsentMarker.
func (c Cell) String() string {
	if !c.Present() {
		return AbsentMarker
	}
	return c.Digits
}

// AnnotatedGrid mirrors the reference grid position for position.
type AnnotatedGrid [GridSize][GridSize]Cell

// Cell returns the cell at row r, column c.
func (g AnnotatedGrid) Cell(r, c int) Cell {
	return g[r][c]
}

// Rows returns the grid as display strings, row by row.
func (g AnnotatedGrid) Rows() [][]string {
	rows := make([][]string, GridSize)
	for r := range g {
		rows[r] = make([]string, GridSize)
		for c := range g[r] {
			rows[r][c] = g[r][c].String()
		}
	}
	return rows
}

// String renders the grid as three space separated lines.
func (g AnnotatedGrid) String() string {
	var b strings.Builder
	for r, row := range g.Rows() {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(row, " "))
	}
	return b.String()
}

// Annotate builds the grid for m. Position (r,c) always derives from the
// reference number at (r,c).
func Annotate(m DigitMultiset) AnnotatedGrid {
	var g AnnotatedGrid
	for r, row := range referenceGrid {
		for c, v := range row {
			g[r][c] = annotateCell(v, m.Count(v))
		}
	}
	return g
}

func annotateCell(v, count int) Cell {
	if count < 1 {
		return Cell{Kind: CellAbsent, Reference: v}
	}
	return Cell{
		Kind:      CellDigits,
		Reference: v,
		Digits:    strings.Repeat(strconv.Itoa(v), count),
	}
}
