package pipeline_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/observability"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/pipeline"
)

func newRunner() *pipeline.Runner {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return pipeline.NewRunner(logger, observability.NewMetricsForTesting())
}

func writeFixture(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trv.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestRunner_Run(t *testing.T) {
	path := writeFixture(t,
		"66666,2309,2,2305,2309,2,HAIKUI,20230905",
		"2023090508,251,1182,-120,35,42",
		"2023090509,253,1180,-118,33,40",
		"66666,2311,1,2307,2311,0,SAOLA,20230911",
		"2023091102,221,1131,-90,28,55",
	)

	out, err := newRunner().Run(path)

	require.NoError(t, err)
	assert.Len(t, out.Blocks, 2)
	assert.Empty(t, out.Diagnostics)
	assert.Equal(t, 2, out.Summary.TotalBlocks)
	assert.Equal(t, map[string]int{"2023": 2}, out.Summary.YearCounts)
	require.NotNil(t, out.Summary.TrackLengthStats)
	assert.Equal(t, 3, out.Summary.TrackLengthStats.TotalPoints)
}

func TestRunner_RunSurfacesDiagnostics(t *testing.T) {
	path := writeFixture(t,
		"66666,2309,3,2305,2309,2,HAIKUI,20230905",
		"2023090508,251,1182,-120,35,42",
		"bad,line",
	)

	out, err := newRunner().Run(path)

	require.NoError(t, err)
	assert.Len(t, out.Blocks, 1)
	assert.Len(t, out.Diagnostics, 2) // bad arity + count mismatch
}

func TestRunner_RunMissingFile(t *testing.T) {
	_, err := newRunner().Run(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
