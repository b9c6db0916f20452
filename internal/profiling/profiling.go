// Package profiling is a lightweight per-frame CPU accounting layer for the
// viewer's tick loop.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	mu    sync.Mutex
	frame = make(map[string]time.Duration)
)

// Track returns a stop function recording elapsed time under name.
// Usage: defer profiling.Track("grid.Tick")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frame[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the current totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frame)
	mu.Unlock()
}

// SumWithPrefix totals every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for name, d := range frame {
		if strings.HasPrefix(name, prefix) {
			total += d
		}
	}
	return total
}

// TopN formats the n largest buckets of the current frame, e.g.
// "renderer.Draw:4.2ms, grid.Tick:0.3ms".
func TopN(n int) string {
	mu.Lock()
	type bucket struct {
		name string
		dur  time.Duration
	}
	list := make([]bucket, 0, len(frame))
	for name, d := range frame {
		list = append(list, bucket{name, d})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, b := range list[:n] {
		parts = append(parts, fmt.Sprintf("%s:%.1fms", b.name, float64(b.dur.Microseconds())/1000))
	}
	return strings.Join(parts, ", ")
}
