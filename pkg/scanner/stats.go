package scanner

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"
)

// Stats aggregates per-run counters. Safe for concurrent use.
type Stats struct {
	sources atomic.Int64
	bytes   atomic.Int64
}

// Sources returns the number of sources processed.
func (s *Stats) Sources() int64 {
	return s.sources.Load()
}

// Bytes returns the number of source bytes scanned.
func (s *Stats) Bytes() int64 {
	return s.bytes.Load()
}

func (s *Stats) add(bytes int) {
	s.sources.Add(1)
	s.bytes.Add(int64(bytes))
}

// Summary writes a one-line throughput report.
func (s *Stats) Summary(w io.Writer, elapsed time.Duration) {
	seconds := elapsed.Seconds()
	if seconds == 0 {
		seconds = 0.001
	}
	mib := float64(s.Bytes()) / (1024 * 1024)
	fmt.Fprintf(w, "Scanned %.2f MiB from %d sources in %.1f seconds (%.2f MiB/s)\n",
		mib, s.Sources(), seconds, mib/seconds)
}
