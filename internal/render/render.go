// Package render writes reading documents as text, JSON or YAML.
package render

import (
	"fmt"
	"io"

	"github.com/numerology-dev/loshu-grid/api/v1alpha1"
	"github.com/numerology-dev/loshu-grid/internal/config"
)

// Renderer writes readings to w.
type Renderer interface {
	// RenderReading writes a single reading.
	RenderReading(w io.Writer, r *v1alpha1.LoShuReading) error
	// RenderList writes a batch of readings.
	RenderList(w io.Writer, l *v1alpha1.LoShuReadingList) error
}

// Options configures the renderers that care about them.
type Options struct {
	// Color is one of config.ColorAuto, config.ColorAlways, config.ColorNever.
	Color string
}

// NewRenderer is a factory that creates a Renderer for the given output format.
func NewRenderer(format string, opts Options) (Renderer, error) {
	switch format {
	case config.OutputText, "":
		return NewTextRenderer(opts), nil
	case config.OutputJSON:
		return &JSONRenderer{}, nil
	case config.OutputYAML:
		return &YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}
