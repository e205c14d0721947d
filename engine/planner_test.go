package engine

import "testing"

func TestPlanWindowsSingleWindow(t *testing.T) {
	for _, total := range []int{1, 10, 99, 100} {
		windows := PlanWindows(total, 100, 20)
		if len(windows) != 1 {
			t.Fatalf("total=%d: expected 1 window, got %d", total, len(windows))
		}
		if windows[0].Start != 0 || windows[0].End != total {
			t.Fatalf("total=%d: expected [0,%d), got [%d,%d)", total, total, windows[0].Start, windows[0].End)
		}
	}
}

func TestPlanWindowsEmptyInput(t *testing.T) {
	if windows := PlanWindows(0, 100, 20); windows != nil {
		t.Fatalf("expected no windows for empty sequence, got %v", windows)
	}
}

func TestPlanWindowsCoverage(t *testing.T) {
	cases := []struct {
		total, windowSize, overlap int
	}{
		{101, 100, 20},
		{250, 100, 20},
		{1000, 100, 0},
		{1000, 100, 500}, // overlap larger than the cap
		{523, 97, 13},
		{2048, 1014, 50},
	}

	for _, tc := range cases {
		windows := PlanWindows(tc.total, tc.windowSize, tc.overlap)
		if len(windows) < 2 {
			t.Fatalf("total=%d window=%d: expected multiple windows, got %d",
				tc.total, tc.windowSize, len(windows))
		}

		effOverlap := tc.overlap
		if limit := tc.windowSize / 5; effOverlap > limit {
			effOverlap = limit
		}

		if windows[0].Start != 0 {
			t.Fatalf("first window starts at %d, want 0", windows[0].Start)
		}
		if last := windows[len(windows)-1]; last.End != tc.total {
			t.Fatalf("last window ends at %d, want %d", last.End, tc.total)
		}
		for i, w := range windows {
			if w.Len() <= 0 || w.Len() > tc.windowSize {
				t.Fatalf("window %d has length %d, want within (0,%d]", i, w.Len(), tc.windowSize)
			}
			if i == 0 {
				continue
			}
			prev := windows[i-1]
			if w.Start > prev.End {
				t.Fatalf("gap between window %d (end %d) and %d (start %d)", i-1, prev.End, i, w.Start)
			}
			if w.Start != prev.End-effOverlap {
				t.Fatalf("window %d starts at %d, want %d (overlap %d)", i, w.Start, prev.End-effOverlap, effOverlap)
			}
		}

		// Step bound: the planner advances at least windowSize-effOverlap
		// per window, so the count is proportional to total/(window-overlap).
		maxWindows := tc.total/(tc.windowSize-effOverlap) + 2
		if len(windows) > maxWindows {
			t.Fatalf("planner emitted %d windows, bound is %d", len(windows), maxWindows)
		}
	}
}

func TestPlanWindowsTinyWindowTerminates(t *testing.T) {
	// window/5 == 0, so the effective overlap collapses to zero and every
	// step advances by a full window.
	windows := PlanWindows(10, 3, 50)
	if len(windows) != 4 {
		t.Fatalf("expected 4 windows, got %d", len(windows))
	}
	for i := 1; i < len(windows); i++ {
		if windows[i].Start != windows[i-1].End {
			t.Fatalf("expected zero overlap, window %d starts at %d after end %d",
				i, windows[i].Start, windows[i-1].End)
		}
	}
}
