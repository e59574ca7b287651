package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/domain"
)

// csvColumns is the flat tabular layout: one row per (block, track point)
// pair. Latitude, longitude, and velocity carry converted units; stream
// function and vorticity stay in their raw integer encoding.
var csvColumns = []string{
	"name", "start_date", "regional_code", "stop_reason",
	"timestamp", "latitude_degrees", "longitude_degrees",
	"stream_function", "vorticity", "velocity_ms",
}

// WriteCSV writes the tabular form of blocks to w.
func WriteCSV(w io.Writer, blocks []domain.Block) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, b := range blocks {
		for _, p := range b.Track {
			row := []string{
				b.Header.Name,
				b.Header.StartDate,
				b.Header.RegionalCode,
				strconv.Itoa(int(b.Header.StopReason)),
				p.Timestamp,
				formatFloat(p.Latitude()),
				formatFloat(p.Longitude()),
				strconv.Itoa(p.StreamFunction),
				strconv.Itoa(p.Vorticity),
				formatFloat(p.Velocity()),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteCSVFile writes the tabular form of blocks to path.
func WriteCSVFile(path string, blocks []domain.Block) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, blocks); err != nil {
		return err
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
