package parser

import "strings"

// ratio returns a character-level similarity score in [0,1] based on
// the longest common subsequence of the two strings:
// 2*LCS / (len(a)+len(b)). Identical strings score 1, disjoint ones 0.
func ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	return 2 * float64(lcsLength(ra, rb)) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest-common-subsequence length with a
// two-row dynamic program. Inputs are short command phrases, so the
// quadratic cost is irrelevant.
func lcsLength(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// wordOverlap returns the fraction of the phrase's whitespace-delimited
// words that also appear in the input.
func wordOverlap(input, phrase string) float64 {
	phraseWords := strings.Fields(phrase)
	if len(phraseWords) == 0 {
		return 0
	}
	inputWords := make(map[string]bool)
	for _, w := range strings.Fields(input) {
		inputWords[w] = true
	}
	shared := 0
	for _, w := range phraseWords {
		if inputWords[w] {
			shared++
		}
	}
	return float64(shared) / float64(len(phraseWords))
}

// clamp01 bounds a score into [0,1] after bonuses are applied.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
