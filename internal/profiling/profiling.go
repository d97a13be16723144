package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings for scene and viewer work.

type entry struct {
	total time.Duration
	calls int
}

var (
	mu     sync.Mutex
	frame  = make(map[string]*entry)
	frames int
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("scene.Draws")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		e, ok := frame[name]
		if !ok {
			e = &entry{}
			frame[name] = e
		}
		e.total += d
		e.calls++
		mu.Unlock()
	}
}

// ResetFrame clears the current frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frame)
	frames++
	mu.Unlock()
}

// Frames returns how many times ResetFrame has been called.
func Frames() int {
	mu.Lock()
	defer mu.Unlock()
	return frames
}

// Snapshot returns a copy of the current frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frame))
	for k, e := range frame {
		out[k] = e.total
	}
	return out
}

// Calls returns how many times name was tracked in the current frame.
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	if e, ok := frame[name]; ok {
		return e.calls
	}
	return 0
}

// SumWithPrefix totals every entry of the current frame whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, e := range frame {
		if strings.HasPrefix(k, prefix) {
			sum += e.total
		}
	}
	return sum
}

// TopN formats the n most expensive entries of the current frame.
// Example: "scene.Draws:0.4ms, viewer.Upload:0.1ms"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, list[i].name+":"+formatMs(ms))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(ms float64) string {
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s + "ms"
}
