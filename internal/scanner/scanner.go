// Package scanner implements the single-pass TRV block scanner.
//
// The input is a flat stream of comma-separated lines with no delimiter
// between blocks: a header line (sentinel prefix "66666", 8 fields) declares
// how many track lines (6 fields each) follow it. The declared count is not
// always accurate and individual lines may be malformed, so the scanner
// never enforces a strict grammar. Instead it resynchronizes at line
// granularity: malformed lines are dropped with a diagnostic, and the
// sentinel itself is the anchor: a header seen while collecting track
// points ends the current block without being consumed.
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/domain"
	"github.com/490951954-a11y/TCRL-in-china-area-analysis/internal/observability"
)

const (
	headerFieldCount = 8
	trackFieldCount  = 6
)

// Scanner turns a line stream into blocks. It carries only its logger and
// metrics; every Scan call owns its own cursor and result, so one Scanner
// may be reused across files.
type Scanner struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Scanner. A nil logger discards log output and nil metrics
// fall back to unregistered collectors, so tests can pass nil for both.
func New(logger *slog.Logger, metrics *observability.Metrics) *Scanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if metrics == nil {
		metrics = observability.NewMetricsForTesting()
	}
	return &Scanner{logger: logger, metrics: metrics}
}

// Scan walks the lines once with a single forward cursor and returns every
// block it can recover, in input order, together with the diagnostics for
// everything it had to drop. Diagnostics are advisory: they never change
// what is parsed.
func (s *Scanner) Scan(lines []string) Result {
	var res Result
	s.metrics.LinesScanned.Add(float64(len(lines)))

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(line, domain.Sentinel) {
			// Shouldn't occur in well-formed input; skip and keep looking
			// for the next sentinel.
			i++
			continue
		}

		header, ok := s.parseHeader(&res, line, i+1)
		if !ok {
			// The malformed header and its implied block are dropped; the
			// next line is re-evaluated as a potential header.
			i++
			continue
		}
		i++

		track, next := s.collectTrack(&res, lines, i, header.DeclaredRecordCount)
		i = next

		if len(track) != header.DeclaredRecordCount {
			s.reportMismatch(&res, header, len(track))
		}

		res.Blocks = append(res.Blocks, domain.Block{Header: header, Track: track})
		s.metrics.BlocksParsed.Inc()
		s.metrics.TrackLength.Observe(float64(len(track)))
	}

	return res
}

// ScanReader reads all lines from r and scans them. The whole input is held
// in memory; TRV files are bounded (decades of hourly fixes fit in a few MB).
func (s *Scanner) ScanReader(r io.Reader) (Result, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Result{}, fmt.Errorf("read input: %w", err)
	}
	return s.Scan(lines), nil
}

// ScanFile opens and scans path. An unreadable file is the only fatal
// condition anywhere in the scanner: it returns an empty Result and the
// error.
func (s *Scanner) ScanFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Error("cannot read input file", "path", path, "error", err)
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return s.ScanReader(f)
}

// parseHeader splits a sentinel line into a HeaderRecord. Reports a
// diagnostic and returns false for wrong arity or unparseable integer
// fields.
func (s *Scanner) parseHeader(res *Result, line string, lineNum int) (domain.HeaderRecord, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != headerFieldCount {
		s.report(res, Diagnostic{
			Kind:    DiagHeaderFieldCount,
			Line:    lineNum,
			Message: fmt.Sprintf("header has %d fields, want %d", len(fields), headerFieldCount),
		})
		s.metrics.MalformedHeaderLines.Inc()
		return domain.HeaderRecord{}, false
	}

	count, errCount := strconv.Atoi(strings.TrimSpace(fields[2]))
	reason, errReason := strconv.Atoi(strings.TrimSpace(fields[5]))
	if errCount != nil || errReason != nil {
		err := errCount
		if err == nil {
			err = errReason
		}
		s.report(res, Diagnostic{
			Kind:    DiagHeaderParse,
			Line:    lineNum,
			Message: fmt.Sprintf("header integer field: %v", err),
		})
		s.metrics.MalformedHeaderLines.Inc()
		return domain.HeaderRecord{}, false
	}

	return domain.HeaderRecord{
		Flag:                fields[0],
		IntlCode:            fields[1],
		DeclaredRecordCount: count,
		SequenceNumber:      fields[3],
		RegionalCode:        fields[4],
		StopReason:          domain.StopReason(reason),
		Name:                fields[6],
		StartDate:           fields[7],
	}, true
}

// collectTrack reads track lines starting at cursor i until the declared
// count is reached, the next sentinel appears, or input ends. It returns
// the collected points and the new cursor position. A sentinel line is
// never consumed here; it belongs to the next block.
func (s *Scanner) collectTrack(res *Result, lines []string, i, declared int) ([]domain.TrackPoint, int) {
	var track []domain.TrackPoint
	for len(track) < declared && i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, domain.Sentinel) {
			break
		}

		point, ok := s.parseTrackLine(res, line, i+1)
		i++
		if !ok {
			continue
		}
		track = append(track, point)
	}
	return track, i
}

// parseTrackLine splits one 6-field track line. Reports a diagnostic and
// returns false for wrong arity or unparseable integer fields; the line is
// dropped either way and contributes nothing to the collected count.
func (s *Scanner) parseTrackLine(res *Result, line string, lineNum int) (domain.TrackPoint, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != trackFieldCount {
		s.report(res, Diagnostic{
			Kind:    DiagTrackFieldCount,
			Line:    lineNum,
			Message: fmt.Sprintf("track line has %d fields, want %d", len(fields), trackFieldCount),
		})
		s.metrics.MalformedTrackLines.Inc()
		return domain.TrackPoint{}, false
	}

	ints := make([]int, 5)
	for j := 1; j < trackFieldCount; j++ {
		v, err := strconv.Atoi(strings.TrimSpace(fields[j]))
		if err != nil {
			s.report(res, Diagnostic{
				Kind:    DiagTrackParse,
				Line:    lineNum,
				Message: fmt.Sprintf("track integer field %d: %v", j, err),
			})
			s.metrics.MalformedTrackLines.Inc()
			return domain.TrackPoint{}, false
		}
		ints[j-1] = v
	}

	return domain.TrackPoint{
		Timestamp:      fields[0],
		LatDecideg:     ints[0],
		LonDecideg:     ints[1],
		StreamFunction: ints[2],
		Vorticity:      ints[3],
		VelocityDecims: ints[4],
	}, true
}

// reportMismatch records the advisory count-mismatch diagnostic. The block
// is still emitted with whatever was collected.
func (s *Scanner) reportMismatch(res *Result, header domain.HeaderRecord, collected int) {
	s.report(res, Diagnostic{
		Kind:  DiagCountMismatch,
		Block: header.Identity(),
		Message: fmt.Sprintf("expected %d track points, got %d",
			header.DeclaredRecordCount, collected),
	})
	s.metrics.CountMismatches.Inc()
}

func (s *Scanner) report(res *Result, d Diagnostic) {
	res.Diagnostics = append(res.Diagnostics, d)
	s.logger.Warn("scan diagnostic", "kind", string(d.Kind), "line", d.Line, "block", d.Block, "detail", d.Message)
}
