package pipeline

import "strings"

// Repeated-phrase detection bounds.
const (
	minRepeatPhraseLen = 3
	maxRepeatPhraseLen = 10
	// similarityThreshold is the fraction of positions that must match
	// for two equal-length windows to count as the same phrase.
	similarityThreshold = 0.8
)

// RemoveRepeatedPhrases collapses re-recorded phrase repeats, keeping only
// the last take. Candidate phrase lengths are searched ascending and the
// first match wins: when both a short and a long repeat match at the same
// position, the short one is collapsed. Inputs shorter than five tokens
// are returned unchanged.
func (c *Cleaner) RemoveRepeatedPhrases(tokens []Token, log *Log) []Token {
	if len(tokens) < 5 {
		return tokens
	}

	out := make([]Token, 0, len(tokens))
	i := 0

	for i < len(tokens) {
		phraseLen := findRepeatedPhraseLen(tokens[i:])
		if phraseLen == 0 {
			out = append(out, tokens[i])
			i++
			continue
		}

		phrase := tokens[i : i+phraseLen]
		repeatCount := 2
		for i+(repeatCount+1)*phraseLen <= len(tokens) &&
			similarPhrases(phrase, tokens[i+repeatCount*phraseLen:i+(repeatCount+1)*phraseLen]) {
			repeatCount++
		}

		// Skip every take but the final one.
		skipped := (repeatCount - 1) * phraseLen
		log.add(LogEntry{
			Reason:  ReasonRepeatedPhrase,
			Text:    joinTokenText(tokens[i : i+skipped]),
			StartMs: tokens[i].StartMs,
		})
		i += skipped
	}

	return out
}

// findRepeatedPhraseLen returns the shortest phrase length for which the
// tokens open with two consecutive similar windows, or 0 if none does.
func findRepeatedPhraseLen(tokens []Token) int {
	maxLen := min(maxRepeatPhraseLen, len(tokens)/2)
	for l := minRepeatPhraseLen; l <= maxLen; l++ {
		if similarPhrases(tokens[:l], tokens[l:2*l]) {
			return l
		}
	}
	return 0
}

// similarPhrases reports whether two equal-length windows match at 80% or
// more of their positions. Comparison is case-insensitive over the full
// token text, punctuation included.
func similarPhrases(a, b []Token) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}

	matches := 0
	for k := range a {
		if strings.EqualFold(strings.TrimSpace(a[k].Text), strings.TrimSpace(b[k].Text)) {
			matches++
		}
	}

	return float64(matches)/float64(len(a)) >= similarityThreshold
}
