package display

import (
	"fmt"
	"io"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/domain"
)

const exampleRule = "============================================================"

// PrintExample writes a detailed view of one block: header fields, duration
// qualification, and the first three plus the last track points with
// converted units.
func PrintExample(w io.Writer, blocks []domain.Block, index int) {
	if len(blocks) == 0 {
		fmt.Fprintln(w, "No data available")
		return
	}
	if index < 0 || index >= len(blocks) {
		fmt.Fprintf(w, "Index %d out of range. Max index: %d\n", index, len(blocks)-1)
		return
	}

	b := blocks[index]
	length := b.Duration()

	fmt.Fprintf(w, "\n%s\n", exampleRule)
	fmt.Fprintf(w, "EXAMPLE TRV RESIDUAL VORTEX DATA (Index: %d)\n", index)
	fmt.Fprintln(w, exampleRule)

	fmt.Fprintln(w, "\nBasic Information:")
	fmt.Fprintf(w, "  Name: %s\n", b.Header.Name)
	fmt.Fprintf(w, "  International Code: %s\n", b.Header.IntlCode)
	fmt.Fprintf(w, "  Regional Code: %s\n", b.Header.RegionalCode)
	fmt.Fprintf(w, "  Start Date: %s\n", b.Header.StartDate)
	fmt.Fprintf(w, "  Track Points: %d (actual: %d)\n", b.Header.DeclaredRecordCount, length)
	fmt.Fprintf(w, "  Duration: %d hours\n", length)
	fmt.Fprintf(w, "  Meets >=6h: %s\n", yesNo(length >= 6))
	fmt.Fprintf(w, "  Meets >=12h: %s\n", yesNo(length >= 12))
	fmt.Fprintf(w, "  Meets >=24h: %s\n", yesNo(length >= 24))
	fmt.Fprintf(w, "  Stop Reason: %s (%d)\n", b.Header.StopReason.Label(), int(b.Header.StopReason))

	if length == 0 {
		fmt.Fprintln(w, "\nNo track points.")
		return
	}

	fmt.Fprintln(w, "\nFirst 3 track points:")
	for i, p := range b.Track {
		if i == 3 {
			break
		}
		fmt.Fprintf(w, "  Point %d:\n", i+1)
		printPoint(w, p, "    ")
	}

	fmt.Fprintln(w, "\nLast track point:")
	printPoint(w, b.Track[length-1], "  ")
}

func printPoint(w io.Writer, p domain.TrackPoint, indent string) {
	fmt.Fprintf(w, "%sTime: %s\n", indent, p.Timestamp)
	fmt.Fprintf(w, "%sPosition: %.1f°N, %.1f°E\n", indent, p.Latitude(), p.Longitude())
	fmt.Fprintf(w, "%sStream Function: %d (10⁴m²/s)\n", indent, p.StreamFunction)
	fmt.Fprintf(w, "%sVorticity: %d (10⁻⁵s⁻¹)\n", indent, p.Vorticity)
	fmt.Fprintf(w, "%sVelocity: %.1f m/s\n", indent, p.Velocity())
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
