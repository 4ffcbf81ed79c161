package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/numerology-dev/loshu-grid/api/v1alpha1"
	"github.com/numerology-dev/loshu-grid/internal/config"
	"github.com/numerology-dev/loshu-grid/internal/loshu"
)

// ANSI colours of the text layout.
const (
	colorRed     = lipgloss.Color("1")
	colorGreen   = lipgloss.Color("2")
	colorYellow  = lipgloss.Color("3")
	colorBlue    = lipgloss.Color("4")
	colorMagenta = lipgloss.Color("5")
	colorCyan    = lipgloss.Color("6")
)

// TextRenderer writes the human readable report.
type TextRenderer struct {
	color string
}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer(opts Options) *TextRenderer {
	return &TextRenderer{color: opts.Color}
}

type textStyles struct {
	mulank    lipgloss.Style
	bhagyank  lipgloss.Style
	kua       lipgloss.Style
	missing   lipgloss.Style
	heading   lipgloss.Style
	cell      lipgloss.Style
	border    lipgloss.Style
	frequency lipgloss.Style
}

func (t *TextRenderer) styles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	switch t.color {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	}
	return textStyles{
		mulank:    r.NewStyle().Foreground(colorGreen),
		bhagyank:  r.NewStyle().Foreground(colorBlue),
		kua:       r.NewStyle().Foreground(colorMagenta),
		missing:   r.NewStyle().Foreground(colorRed),
		heading:   r.NewStyle().Bold(true),
		cell:      r.NewStyle().Foreground(colorCyan).Padding(0, 1).Align(lipgloss.Center),
		border:    r.NewStyle(),
		frequency: r.NewStyle().Foreground(colorYellow),
	}
}

// RenderReading implements Renderer.
func (t *TextRenderer) RenderReading(w io.Writer, r *v1alpha1.LoShuReading) error {
	_, err := io.WriteString(w, t.report(t.styles(w), r))
	return err
}

// RenderList implements Renderer. Readings are separated by a rule.
func (t *TextRenderer) RenderList(w io.Writer, l *v1alpha1.LoShuReadingList) error {
	s := t.styles(w)
	parts := make([]string, 0, len(l.Items))
	for i := range l.Items {
		parts = append(parts, t.report(s, &l.Items[i]))
	}
	_, err := io.WriteString(w, strings.Join(parts, "\n"+strings.Repeat("─", 32)+"\n\n"))
	return err
}

func (t *TextRenderer) report(s textStyles, r *v1alpha1.LoShuReading) string {
	var b strings.Builder

	if r.Name != "" {
		fmt.Fprintf(&b, "%s %s\n", s.heading.Render("Reading:"), r.Name)
	}
	fmt.Fprintf(&b, "%s %s (%s)\n", s.heading.Render("Date of Birth:"), r.Spec.DateOfBirth, r.Spec.Gender)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "%s %s\n", s.mulank.Render("Mulank:"), s.mulank.Render(strconv.Itoa(r.Status.Mulank)))
	fmt.Fprintf(&b, "%s %s\n", s.bhagyank.Render("Bhagyank:"), s.bhagyank.Render(strconv.Itoa(r.Status.Bhagyank)))
	fmt.Fprintf(&b, "%s %s\n", s.kua.Render("Kua Number:"), s.kua.Render(strconv.Itoa(r.Status.Kua)))
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "%s %s\n", s.missing.Render("Missing Numbers:"), s.missing.Render(joinInts(r.Status.MissingNumbers)))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, s.heading.Render("Lo Shu Grid:"))
	fmt.Fprintln(&b, t.grid(s, r.Status.Grid))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, s.heading.Render("Digit Frequencies:"))
	for _, f := range r.Status.Frequencies {
		fmt.Fprintf(&b, "%s: %s time(s)\n", s.frequency.Render(strconv.Itoa(f.Digit)), s.frequency.Render(strconv.Itoa(f.Count)))
	}
	return b.String()
}

func (t *TextRenderer) grid(s textStyles, grid [][]v1alpha1.GridCell) string {
	rows := make([][]string, len(grid))
	for i, row := range grid {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			if cell.Present {
				rows[i][j] = cell.Digits
			} else {
				rows[i][j] = loshu.AbsentMarker
			}
		}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.border).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style { return s.cell }).
		Rows(rows...).
		String()
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "none"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
