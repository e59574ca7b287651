// Package export serializes scanned TRV blocks to flat-file formats:
// nested JSON (lossless, round-trippable), tabular CSV (one row per track
// point, converted units), and GeoJSON (one LineString per track).
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/domain"
)

// WriteJSON writes blocks as indented UTF-8 JSON. HTML escaping is off so
// non-Latin vortex names survive byte-for-byte readable.
func WriteJSON(w io.Writer, blocks []domain.Block) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(blocks); err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}
	return nil
}

// WriteJSONFile writes blocks to path, creating or truncating it.
func WriteJSONFile(path string, blocks []domain.Block) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteJSON(f, blocks); err != nil {
		return err
	}
	return f.Close()
}

// ReadJSON reads blocks previously written by WriteJSON. Together they form
// a lossless round trip: every header and track field survives unchanged.
func ReadJSON(r io.Reader) ([]domain.Block, error) {
	var blocks []domain.Block
	if err := json.NewDecoder(r).Decode(&blocks); err != nil {
		return nil, fmt.Errorf("decode blocks: %w", err)
	}
	return blocks, nil
}

// ReadJSONFile reads blocks from path.
func ReadJSONFile(path string) ([]domain.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
