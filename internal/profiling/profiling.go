// Package profiling accumulates wall time per named stage of a generation run.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Stage is the accumulated time of one named stage.
type Stage struct {
	Total time.Duration
	Count int
}

// Mean is the average duration of one call.
func (s Stage) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

var (
	mu     sync.Mutex
	stages = make(map[string]Stage)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("itemgen.Generate")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		s := stages[name]
		s.Total += d
		s.Count++
		stages[name] = s
		mu.Unlock()
	}
}

// Reset clears all recorded stages. Call before a run.
func Reset() {
	mu.Lock()
	clear(stages)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]Stage {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Stage, len(stages))
	for k, v := range stages {
		out[k] = v
	}
	return out
}

// TopN formats the n stages with the largest totals.
// Example: "export.WriteGLB:41.2ms/120, blockmodel.Resolve:12.5ms/120"
func TopN(n int) string {
	ss := Snapshot()
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := ss[names[i]], ss[names[j]]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return names[i] < names[j]
	})
	n = min(n, len(names))

	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		s := ss[name]
		ms := float64(s.Total.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms/%d", name, ms, s.Count))
	}
	return strings.Join(parts, ", ")
}
