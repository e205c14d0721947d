package engine

// Window is a contiguous token span [Start, End) into the encoded input.
// Consecutive windows may share up to the effective overlap; non-adjacent
// windows never overlap.
type Window struct {
	Start int
	End   int
}

// Len returns the number of tokens covered by the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// PlanWindows partitions a token sequence of length total into the minimum
// number of windows of at most windowSize tokens. A sequence that fits is
// returned as a single full-span window. Otherwise windows are emitted left
// to right, each starting overlap tokens before the previous end, where the
// overlap is capped at windowSize/5 so that every step still advances.
//
// PlanWindows is a total function: it never fails on well-formed input and
// always terminates, because windowSize - effectiveOverlap > 0.
func PlanWindows(total, windowSize, overlap int) []Window {
	if total <= 0 || windowSize <= 0 {
		return nil
	}
	if total <= windowSize {
		return []Window{{Start: 0, End: total}}
	}

	effectiveOverlap := overlap
	if limit := windowSize / 5; effectiveOverlap > limit {
		effectiveOverlap = limit
	}
	if effectiveOverlap < 0 {
		effectiveOverlap = 0
	}

	var windows []Window
	start := 0
	for start < total {
		end := start + windowSize
		if end > total {
			end = total
		}
		windows = append(windows, Window{Start: start, End: end})
		if end == total {
			break
		}
		start = end - effectiveOverlap
	}
	return windows
}
