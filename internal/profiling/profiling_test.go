package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	for i := 0; i < 3; i++ {
		stop := Track("stage.a")
		time.Sleep(time.Millisecond)
		stop()
	}
	Track("stage.b")()

	ss := Snapshot()
	if ss["stage.a"].Count != 3 {
		t.Fatalf("expected 3 calls, got %d", ss["stage.a"].Count)
	}
	if ss["stage.a"].Total < 3*time.Millisecond {
		t.Errorf("expected at least 3ms, got %v", ss["stage.a"].Total)
	}
	if ss["stage.a"].Mean() < time.Millisecond {
		t.Errorf("expected mean >= 1ms, got %v", ss["stage.a"].Mean())
	}

	top := TopN(1)
	if !strings.HasPrefix(top, "stage.a:") || !strings.HasSuffix(top, "/3") {
		t.Errorf("unexpected TopN output %q", top)
	}
	if got := strings.Count(TopN(10), ","); got != 1 {
		t.Errorf("expected two entries, got %q", TopN(10))
	}

	Reset()
	if len(Snapshot()) != 0 {
		t.Error("expected empty snapshot after reset")
	}
	if TopN(5) != "" {
		t.Error("expected empty TopN after reset")
	}
}

func TestStageMeanZero(t *testing.T) {
	if (Stage{}).Mean() != 0 {
		t.Error("expected zero mean for empty stage")
	}
}
