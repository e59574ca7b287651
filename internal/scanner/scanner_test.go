package scanner_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/domain"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/scanner"
)

func newScanner() *scanner.Scanner {
	return scanner.New(nil, nil)
}

func TestScan_WellFormedInput(t *testing.T) {
	lines := []string{
		"66666,2309,2,2305,2309,2,HAIKUI,20230905",
		"2023090508,251,1182,-120,35,42",
		"2023090509,253,1180,-118,33,40",
		"66666,2311,1,2307,2311,0,SAOLA,20230911",
		"2023091102,221,1131,-90,28,55",
	}

	res := newScanner().Scan(lines)

	require.Len(t, res.Blocks, 2)
	assert.Empty(t, res.Diagnostics)

	first := res.Blocks[0]
	assert.Equal(t, "66666", first.Header.Flag)
	assert.Equal(t, "2309", first.Header.IntlCode)
	assert.Equal(t, 2, first.Header.DeclaredRecordCount)
	assert.Equal(t, "2305", first.Header.SequenceNumber)
	assert.Equal(t, "2309", first.Header.RegionalCode)
	assert.Equal(t, domain.StopVortexWeakening, first.Header.StopReason)
	assert.Equal(t, "HAIKUI", first.Header.Name)
	assert.Equal(t, "20230905", first.Header.StartDate)
	require.Len(t, first.Track, 2)
	assert.Equal(t, "2023090508", first.Track[0].Timestamp)
	assert.Equal(t, 251, first.Track[0].LatDecideg)
	assert.Equal(t, 1182, first.Track[0].LonDecideg)
	assert.Equal(t, -120, first.Track[0].StreamFunction)
	assert.Equal(t, 35, first.Track[0].Vorticity)
	assert.Equal(t, 42, first.Track[0].VelocityDecims)

	second := res.Blocks[1]
	assert.Equal(t, "SAOLA", second.Header.Name)
	require.Len(t, second.Track, 1)

	// Well-formed input: every block's track matches its declared count.
	for _, b := range res.Blocks {
		assert.Equal(t, b.Header.DeclaredRecordCount, len(b.Track))
	}
}

func TestScan_HeaderImmediatelyFollowedByHeader(t *testing.T) {
	lines := []string{
		"66666,2309,0,2305,2309,2,EMPTY,20230905",
		"66666,2311,1,2307,2311,0,SAOLA,20230911",
		"2023091102,221,1131,-90,28,55",
	}

	res := newScanner().Scan(lines)

	require.Len(t, res.Blocks, 2)
	assert.Empty(t, res.Blocks[0].Track)
	// The following header was never consumed by the empty block.
	assert.Equal(t, "SAOLA", res.Blocks[1].Header.Name)
	require.Len(t, res.Blocks[1].Track, 1)
}

func TestScan_MalformedTrackLineDoesNotBreakSync(t *testing.T) {
	lines := []string{
		"66666,2309,2,2305,2309,2,HAIKUI,20230905",
		"2023090508,251,1182,-120,35,42",
		"2023090509,253,1180,-118,33", // 5 fields
		"2023090510,255,1178,-116,31,38",
	}

	res := newScanner().Scan(lines)

	require.Len(t, res.Blocks, 1)
	b := res.Blocks[0]
	require.Len(t, b.Track, 2)
	// The malformed line was dropped; the next valid line still counts
	// toward this block.
	assert.Equal(t, "2023090508", b.Track[0].Timestamp)
	assert.Equal(t, "2023090510", b.Track[1].Timestamp)

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, scanner.DiagTrackFieldCount, res.Diagnostics[0].Kind)
	assert.Equal(t, 3, res.Diagnostics[0].Line)
}

func TestScan_CountMismatchStillEmitsBlock(t *testing.T) {
	lines := []string{"66666,2309,48,2305,2309,2,HAIKUI,20230905"}
	for i := 0; i < 40; i++ {
		lines = append(lines, "2023090508,251,1182,-120,35,42")
	}
	lines = append(lines,
		"66666,2311,1,2307,2311,0,SAOLA,20230911",
		"2023091102,221,1131,-90,28,55",
	)

	res := newScanner().Scan(lines)

	require.Len(t, res.Blocks, 2)
	assert.Len(t, res.Blocks[0].Track, 40)
	assert.Equal(t, "SAOLA", res.Blocks[1].Header.Name)
	assert.Len(t, res.Blocks[1].Track, 1)

	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, scanner.DiagCountMismatch, d.Kind)
	assert.Equal(t, "HAIKUI (20230905)", d.Block)
	assert.Contains(t, d.Message, "expected 48")
	assert.Contains(t, d.Message, "got 40")
}

func TestScan_MalformedHeaderDropsImpliedBlock(t *testing.T) {
	t.Run("wrong field count", func(t *testing.T) {
		lines := []string{
			"66666,2309,2,2305,2309,2,HAIKUI", // 7 fields
			"66666,2311,1,2307,2311,0,SAOLA,20230911",
			"2023091102,221,1131,-90,28,55",
		}

		res := newScanner().Scan(lines)

		require.Len(t, res.Blocks, 1)
		assert.Equal(t, "SAOLA", res.Blocks[0].Header.Name)
		require.Len(t, res.Diagnostics, 1)
		assert.Equal(t, scanner.DiagHeaderFieldCount, res.Diagnostics[0].Kind)
		assert.Equal(t, 1, res.Diagnostics[0].Line)
	})

	t.Run("unparseable record count", func(t *testing.T) {
		lines := []string{
			"66666,2309,many,2305,2309,2,HAIKUI,20230905",
			"66666,2311,1,2307,2311,0,SAOLA,20230911",
			"2023091102,221,1131,-90,28,55",
		}

		res := newScanner().Scan(lines)

		require.Len(t, res.Blocks, 1)
		assert.Equal(t, "SAOLA", res.Blocks[0].Header.Name)
		require.Len(t, res.Diagnostics, 1)
		assert.Equal(t, scanner.DiagHeaderParse, res.Diagnostics[0].Kind)
	})

	t.Run("unparseable stop reason", func(t *testing.T) {
		lines := []string{"66666,2309,1,2305,2309,soon,HAIKUI,20230905"}

		res := newScanner().Scan(lines)

		assert.Empty(t, res.Blocks)
		require.Len(t, res.Diagnostics, 1)
		assert.Equal(t, scanner.DiagHeaderParse, res.Diagnostics[0].Kind)
	})
}

func TestScan_NonIntegerTrackFieldDropped(t *testing.T) {
	lines := []string{
		"66666,2309,2,2305,2309,2,HAIKUI,20230905",
		"2023090508,25.1,1182,-120,35,42", // float latitude
		"2023090509,253,1180,-118,33,40",
	}

	res := newScanner().Scan(lines)

	require.Len(t, res.Blocks, 1)
	require.Len(t, res.Blocks[0].Track, 1)
	assert.Equal(t, "2023090509", res.Blocks[0].Track[0].Timestamp)

	require.Len(t, res.Diagnostics, 2)
	assert.Equal(t, scanner.DiagTrackParse, res.Diagnostics[0].Kind)
	assert.Equal(t, scanner.DiagCountMismatch, res.Diagnostics[1].Kind)
}

func TestScan_StrayLinesBeforeFirstHeader(t *testing.T) {
	lines := []string{
		"junk that belongs to no block",
		"",
		"66666,2309,1,2305,2309,2,HAIKUI,20230905",
		"2023090508,251,1182,-120,35,42",
	}

	res := newScanner().Scan(lines)

	require.Len(t, res.Blocks, 1)
	assert.Empty(t, res.Diagnostics)
}

func TestScan_LeadingAndTrailingWhitespace(t *testing.T) {
	lines := []string{
		"  66666,2309,1,2305,2309,2,HAIKUI,20230905  ",
		"\t2023090508,251,1182,-120,35,42",
	}

	res := newScanner().Scan(lines)

	require.Len(t, res.Blocks, 1)
	require.Len(t, res.Blocks[0].Track, 1)
	assert.Empty(t, res.Diagnostics)
}

func TestScan_TruncatedAtEndOfInput(t *testing.T) {
	lines := []string{
		"66666,2309,5,2305,2309,2,HAIKUI,20230905",
		"2023090508,251,1182,-120,35,42",
	}

	res := newScanner().Scan(lines)

	require.Len(t, res.Blocks, 1)
	assert.Len(t, res.Blocks[0].Track, 1)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, scanner.DiagCountMismatch, res.Diagnostics[0].Kind)
}

func TestScan_EmptyInput(t *testing.T) {
	res := newScanner().Scan(nil)
	assert.Empty(t, res.Blocks)
	assert.Empty(t, res.Diagnostics)
}

func TestScan_FreshResultPerCall(t *testing.T) {
	s := newScanner()
	lines := []string{
		"66666,2309,1,2305,2309,2,HAIKUI,20230905",
		"2023090508,251,1182,-120,35,42",
	}

	first := s.Scan(lines)
	second := s.Scan(lines)

	// Reusing the scanner must not accumulate state across calls.
	assert.Len(t, first.Blocks, 1)
	assert.Len(t, second.Blocks, 1)
}

func TestScanReader(t *testing.T) {
	input := strings.Join([]string{
		"66666,2309,1,2305,2309,2,HAIKUI,20230905",
		"2023090508,251,1182,-120,35,42",
	}, "\n")

	res, err := newScanner().ScanReader(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, res.Blocks, 1)
}

func TestScanFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.csv")

	res, err := newScanner().ScanFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Empty(t, res.Blocks)
}

func TestDiagnosticString(t *testing.T) {
	line := scanner.Diagnostic{Kind: scanner.DiagTrackParse, Line: 12, Message: "bad field"}
	assert.Equal(t, "line 12: bad field", line.String())

	block := scanner.Diagnostic{Kind: scanner.DiagCountMismatch, Block: "HAIKUI (20230905)", Message: "expected 48 track points, got 40"}
	assert.Equal(t, "HAIKUI (20230905): expected 48 track points, got 40", block.String())
}
