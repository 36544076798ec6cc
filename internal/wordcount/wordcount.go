// Package wordcount converts word-length targets into provider token budgets
// and trims model output back down to a requested word count.
package wordcount

import (
	"math"
	"regexp"
	"strings"
)

// overshootRatio is the slack allowed before truncation kicks in. Model
// output within 120% of the target is returned untouched.
const overshootRatio = 1.2

// sentenceBoundary matches a terminal punctuation mark followed by
// whitespace, the seam used to split text into whole sentences.
var sentenceBoundary = regexp.MustCompile(`([.!?])\s+`)

// TokensFor converts a target word count into a max-token budget for a
// completion call. Short targets get a tighter multiplier: models pad brief
// completions with punctuation and formatting overhead, so the budget must
// not leave room for an extra paragraph.
func TokensFor(words int) int {
	if words < 150 {
		return max(50, int(math.Round(float64(words)*1.1)))
	}
	return max(100, int(math.Round(float64(words)*1.33)))
}

// Count returns the number of whitespace-separated words in text.
func Count(text string) int {
	return len(strings.Fields(text))
}

// Truncate trims text to approximately target words, cutting at sentence
// boundaries. Text already within 120% of the target is returned unchanged.
// Whole sentences are accumulated greedily while the running word count stays
// at or under the target; if not even the first sentence fits, the text is
// hard-cut at the target word boundary so a non-empty input never truncates
// to nothing.
func Truncate(text string, target int) string {
	if text == "" || target <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) <= int(float64(target)*overshootRatio) {
		return text
	}

	sentences := splitSentences(text)
	var kept []string
	count := 0
	for _, s := range sentences {
		n := len(strings.Fields(s))
		if count+n > target {
			break
		}
		kept = append(kept, s)
		count += n
	}

	truncated := strings.TrimSpace(strings.Join(kept, " "))
	if truncated == "" {
		truncated = strings.Join(words[:target], " ")
	}
	return truncated
}

// splitSentences breaks text after each terminal ./!/? that is followed by
// whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	marked := sentenceBoundary.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")
	out := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
