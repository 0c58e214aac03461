package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"imdb-top100/internal/movie"
)

// WriteJSON writes movies as a 4-space indented UTF-8 array. Non-ASCII and
// HTML characters are kept literally.
func WriteJSON(movies []movie.Record, filename string) error {
	if movies == nil {
		movies = []movie.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(movies); err != nil {
		return fmt.Errorf("encode movies: %w", err)
	}

	if err := os.WriteFile(filename, bytes.TrimRight(buf.Bytes(), "\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
