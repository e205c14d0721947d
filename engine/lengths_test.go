package engine

import "testing"

func TestLengthBounds(t *testing.T) {
	cases := []struct {
		name                 string
		tokenCount, max, min int
		wantMax, wantMin     int
	}{
		{"large input uses configured bounds", 1000, 160, 40, 160, 40},
		{"small input caps max to count-2", 50, 160, 40, 48, 40},
		{"floor of 8 for tiny inputs", 3, 160, 40, 8, 7},
		{"zero tokens still floors", 0, 160, 40, 8, 7},
		{"min forced below max", 50, 160, 100, 48, 47},
		{"misordered config corrected", 1000, 20, 90, 20, 19},
		{"degenerate configured max", 1000, 1, 40, 1, 1},
		{"exactly at floor boundary", 10, 160, 40, 8, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotMax, gotMin := LengthBounds(tc.tokenCount, tc.max, tc.min)
			if gotMax != tc.wantMax || gotMin != tc.wantMin {
				t.Fatalf("LengthBounds(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.tokenCount, tc.max, tc.min, gotMax, gotMin, tc.wantMax, tc.wantMin)
			}
		})
	}
}

func TestLengthBoundsInvariant(t *testing.T) {
	for tokenCount := 0; tokenCount <= 300; tokenCount += 7 {
		for _, max := range []int{1, 2, 8, 40, 160} {
			for _, min := range []int{1, 8, 40, 200} {
				gotMax, gotMin := LengthBounds(tokenCount, max, min)
				if gotMax > max {
					t.Fatalf("maxLen %d exceeds configured %d", gotMax, max)
				}
				if gotMax > 1 && gotMin >= gotMax {
					t.Fatalf("invariant violated: min %d >= max %d (tokenCount=%d, cfg=%d/%d)",
						gotMin, gotMax, tokenCount, max, min)
				}
				if gotMin < 1 {
					t.Fatalf("minLen %d below 1", gotMin)
				}
			}
		}
	}
}
