package engine

// minMaxLen is the floor applied to the computed maximum summary length so
// that a generation call is never asked for a degenerate, near-empty output.
const minMaxLen = 8

// LengthBounds maps an input token count and the configured bounds to a safe
// (maxLen, minLen) pair for a single generation call.
//
// maxLen is capped both by configuration and by the input's own size: a
// summary should not nominally exceed its source, hence tokenCount-2 (the
// constant 2 is a safety margin kept for compatibility, not a principled
// bound). minLen is forced below maxLen; configurations requesting
// min >= max are corrected here rather than rejected, so a misordered pair
// upstream can never crash the pipeline.
//
// Invariant: minLen < maxLen whenever maxLen > 1.
func LengthBounds(tokenCount, maxTokens, minTokens int) (maxLen, minLen int) {
	maxLen = tokenCount - 2
	if maxLen < minMaxLen {
		maxLen = minMaxLen
	}
	if maxTokens < maxLen {
		maxLen = maxTokens
	}

	if maxLen > 1 {
		minLen = maxLen - 1
		if minTokens < minLen {
			minLen = minTokens
		}
	} else {
		minLen = 1
	}
	return maxLen, minLen
}
