package generator

import "fmt"

// SystemPrompt returns the shared instruction used by the provider-backed
// generators. Length bounds are expressed in the prompt because chat APIs
// only enforce an upper output limit; the minimum is a model instruction.
func SystemPrompt(maxTokens, minTokens int) string {
	return fmt.Sprintf(`You are an abstractive text summarizer.

Rules:
- Summarize the provided text into a coherent, self-contained summary.
- Target length: between %d and %d tokens.
- Preserve names, dates, numbers and causal links from the source.
- Do not add information that is not in the source.
- Output only the summary text, no preamble, in the language of the input.`,
		minTokens, maxTokens)
}
