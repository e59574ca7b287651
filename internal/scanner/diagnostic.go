package scanner

import (
	"fmt"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/domain"
)

// DiagKind classifies a scan diagnostic.
type DiagKind string

const (
	// DiagHeaderFieldCount: header line had the wrong number of fields.
	DiagHeaderFieldCount DiagKind = "header_field_count"
	// DiagHeaderParse: header integer field failed to parse.
	DiagHeaderParse DiagKind = "header_parse"
	// DiagTrackFieldCount: track line had the wrong number of fields.
	DiagTrackFieldCount DiagKind = "track_field_count"
	// DiagTrackParse: track integer field failed to parse.
	DiagTrackParse DiagKind = "track_parse"
	// DiagCountMismatch: collected points differ from the declared count.
	DiagCountMismatch DiagKind = "count_mismatch"
)

// Diagnostic describes one dropped line or count mismatch. Line is 1-based
// and zero for block-scoped diagnostics, which carry the block identity
// instead.
type Diagnostic struct {
	Kind    DiagKind
	Line    int
	Block   string
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	if d.Block != "" {
		return fmt.Sprintf("%s: %s", d.Block, d.Message)
	}
	return d.Message
}

// Result is the outcome of one scan: the recovered blocks in input order
// plus the advisory diagnostics. Diagnostics are a side channel; they
// never affect which blocks are emitted.
type Result struct {
	Blocks      []domain.Block
	Diagnostics []Diagnostic
}
