package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/sentcomp/sentence"
)

// JSONRenderer writes examples as JSON lines to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes each example as one JSON object per line.
func (r *JSONRenderer) Render(examples ...sent.Example) error {
	enc := json.NewEncoder(r.W)
	for _, ex := range examples {
		if err := enc.Encode(ex); err != nil {
			return err
		}
	}
	return nil
}
