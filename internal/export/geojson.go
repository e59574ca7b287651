package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	geojson "github.com/paulmach/go.geojson"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/domain"
)

// TrackFeature converts one block into a GeoJSON LineString feature with
// [lon, lat] positions in degrees and the header fields as properties.
// Blocks with fewer than two points still produce a feature; consumers that
// cannot render degenerate lines can filter on the point_count property.
func TrackFeature(b domain.Block) *geojson.Feature {
	coords := make([][]float64, 0, len(b.Track))
	for _, p := range b.Track {
		coords = append(coords, []float64{p.Longitude(), p.Latitude()})
	}

	f := geojson.NewLineStringFeature(coords)
	f.SetProperty("name", b.Header.Name)
	f.SetProperty("international_code", b.Header.IntlCode)
	f.SetProperty("regional_code", b.Header.RegionalCode)
	f.SetProperty("start_date", b.Header.StartDate)
	f.SetProperty("stop_reason", int(b.Header.StopReason))
	f.SetProperty("stop_reason_label", b.Header.StopReason.Label())
	f.SetProperty("point_count", len(b.Track))
	return f
}

// WriteGeoJSON writes all blocks as a FeatureCollection to w.
func WriteGeoJSON(w io.Writer, blocks []domain.Block) error {
	fc := geojson.NewFeatureCollection()
	for _, b := range blocks {
		fc.AddFeature(TrackFeature(b))
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode feature collection: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}

// WriteGeoJSONFile writes all blocks as a FeatureCollection to path.
func WriteGeoJSONFile(path string, blocks []domain.Block) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteGeoJSON(f, blocks); err != nil {
		return err
	}
	return f.Close()
}
