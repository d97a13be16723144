package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulatesPerFrame(t *testing.T) {
	ResetFrame()

	for i := 0; i < 3; i++ {
		Track("test.Op")()
	}
	if got := Calls("test.Op"); got != 3 {
		t.Errorf("Expected 3 calls, got %d", got)
	}
	if _, ok := Snapshot()["test.Op"]; !ok {
		t.Fatalf("Expected test.Op in snapshot")
	}

	before := Frames()
	ResetFrame()
	if Frames() != before+1 {
		t.Errorf("Expected frame counter to advance")
	}
	if got := Calls("test.Op"); got != 0 {
		t.Errorf("Expected calls reset, got %d", got)
	}
}

func TestTopNOrdersByDuration(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frame["slow"] = &entry{total: 3 * time.Millisecond, calls: 1}
	frame["fast"] = &entry{total: 1500 * time.Microsecond, calls: 1}
	frame["tiny"] = &entry{total: 0, calls: 1}
	mu.Unlock()

	if got := SumWithPrefix("s"); got != 3*time.Millisecond {
		t.Errorf("Expected prefix sum 3ms, got %v", got)
	}

	got := TopN(2)
	if got != "slow:3ms, fast:1.5ms" {
		t.Errorf("Unexpected TopN output %q", got)
	}
	if all := TopN(10); !strings.HasSuffix(all, "tiny:0ms") {
		t.Errorf("Expected all entries listed, got %q", all)
	}
	ResetFrame()
}
