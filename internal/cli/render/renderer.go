package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// Renderer writes a use case result to the command output
type Renderer[T any] interface {
	Render(result T) error
}

// writeJSON writes v as indented JSON followed by a newline. Every
// machine-readable output goes through here so the format stays the same.
func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
