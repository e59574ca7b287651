package domain

import "fmt"

// Sentinel is the fixed token that opens every header line. A line whose
// trimmed form starts with it is a header; anything else is track data or
// noise.
const Sentinel = "66666"

// StopReason is the categorical code explaining why tracking of a vortex
// ended. Codes outside the four known values are preserved and reported
// as "Unknown".
type StopReason int

const (
	StopNoVortexFeature StopReason = 0
	StopVortexMerger    StopReason = 1
	StopVortexWeakening StopReason = 2
	StopMovedOutside    StopReason = 3
)

// stopReasonLabels maps the known codes to their report labels.
var stopReasonLabels = map[StopReason]string{
	StopNoVortexFeature: "No vortex feature",
	StopVortexMerger:    "Vortex merger",
	StopVortexWeakening: "Vortex weakening/splitting",
	StopMovedOutside:    "Moved out of boundary",
}

// Label returns the human-readable label for the code, or "Unknown" for
// any code outside 0-3.
func (r StopReason) Label() string {
	if label, ok := stopReasonLabels[r]; ok {
		return label
	}
	return "Unknown"
}

// KnownStopReasons returns the four documented codes in ascending order.
// Histograms pre-seed these buckets so a reason absent from the data still
// shows a zero count.
func KnownStopReasons() []StopReason {
	return []StopReason{StopNoVortexFeature, StopVortexMerger, StopVortexWeakening, StopMovedOutside}
}

// HeaderRecord is the parsed form of one 8-field header line.
type HeaderRecord struct {
	Flag                string     `json:"flag"`
	IntlCode            string     `json:"international_code"`
	DeclaredRecordCount int        `json:"declared_record_count"`
	SequenceNumber      string     `json:"sequence_number"`
	RegionalCode        string     `json:"regional_code"`
	StopReason          StopReason `json:"stop_reason"`
	Name                string     `json:"name"`
	StartDate           string     `json:"start_date"`
}

// Year returns the 4-character year prefix of StartDate. Shorter values
// are returned unchanged; no date validation happens anywhere.
func (h HeaderRecord) Year() string {
	if len(h.StartDate) < 4 {
		return h.StartDate
	}
	return h.StartDate[:4]
}

// Identity returns "name (start_date)", the form diagnostics use to point
// at a block.
func (h HeaderRecord) Identity() string {
	return fmt.Sprintf("%s (%s)", h.Name, h.StartDate)
}

// TrackPoint is the parsed form of one 6-field hourly observation.
// Latitude, longitude, and velocity are stored in the file's 0.1-unit
// integer encoding; use the accessor methods for converted values.
type TrackPoint struct {
	Timestamp      string `json:"timestamp"`
	LatDecideg     int    `json:"lat_decidegrees"`
	LonDecideg     int    `json:"lon_decidegrees"`
	StreamFunction int    `json:"stream_function"`
	Vorticity      int    `json:"vorticity"`
	VelocityDecims int    `json:"velocity_decims"`
}

// Latitude returns the latitude in degrees north.
func (p TrackPoint) Latitude() float64 { return float64(p.LatDecideg) / 10 }

// Longitude returns the longitude in degrees east.
func (p TrackPoint) Longitude() float64 { return float64(p.LonDecideg) / 10 }

// Velocity returns the wind speed in m/s.
func (p TrackPoint) Velocity() float64 { return float64(p.VelocityDecims) / 10 }

// Block is one header plus its ordered track section, the full tracked
// lifetime of one residual vortex. Blocks are built once by the scanner
// and never mutated afterwards.
type Block struct {
	Header HeaderRecord `json:"header"`
	Track  []TrackPoint `json:"track"`
}

// Duration returns the track length in hours (one point per hour). This is
// the actual number of points recovered, which may differ from the header's
// declared count.
func (b Block) Duration() int { return len(b.Track) }
