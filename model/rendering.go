package model

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	windowAlive = '0'
	windowDead  = '.'
)

// Renderer writes a Result for the user
type Renderer interface {
	Render(w io.Writer, r Result) error
}

// TextRenderer prints the alive count followed by the window rows
type TextRenderer struct{}

// Render writes the count line and five rows of '0' (alive) and '.' (dead)
func (TextRenderer) Render(w io.Writer, r Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", r.AliveCount)
	for _, row := range r.Window {
		for _, alive := range row {
			if alive {
				b.WriteByte(windowAlive)
			} else {
				b.WriteByte(windowDead)
			}
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "[TextRenderer.Render] failed to write result")
	}
	return nil
}

// JSONRenderer encodes the Result as a single JSON document
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, r Result) error {
	if err := json.NewEncoder(w).Encode(r); err != nil {
		return errors.Wrap(err, "[JSONRenderer.Render] failed to encode result")
	}
	return nil
}
