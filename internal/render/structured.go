package render

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/numerology-dev/loshu-grid/api/v1alpha1"
)

// JSONRenderer writes indented JSON documents.
type JSONRenderer struct{}

// RenderReading implements Renderer.
func (JSONRenderer) RenderReading(w io.Writer, r *v1alpha1.LoShuReading) error {
	return writeJSON(w, r)
}

// RenderList implements Renderer.
func (JSONRenderer) RenderList(w io.Writer, l *v1alpha1.LoShuReadingList) error {
	return writeJSON(w, l)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// YAMLRenderer writes YAML documents. Field names follow the json tags of the
// API types.
type YAMLRenderer struct{}

// RenderReading implements Renderer.
func (YAMLRenderer) RenderReading(w io.Writer, r *v1alpha1.LoShuReading) error {
	return writeYAML(w, r)
}

// RenderList implements Renderer.
func (YAMLRenderer) RenderList(w io.Writer, l *v1alpha1.LoShuReadingList) error {
	return writeYAML(w, l)
}

func writeYAML(w io.Writer, v any) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	_, err = w.Write(out)
	return err
}
