package pipeline

import "strings"

// False-start detection thresholds. The window sizes and minimum lengths
// are empirically tuned; shrinking minLeadPhraseChars or minLeadWords
// makes the substring containment test false-positive on short common
// phrases.
const (
	falseStartLeadWindow = 3
	falseStartLookahead  = 7
	minLeadWords         = 2
	minLeadPhraseChars   = 3
)

// RemoveFalseStarts drops stutter/restart phrases: a short lead-in ending
// in an ellipsis whose words are repeated in full by the phrase that
// follows. Inputs shorter than three tokens are returned unchanged.
func (c *Cleaner) RemoveFalseStarts(tokens []Token, log *Log) []Token {
	if len(tokens) < 3 {
		return tokens
	}

	out := make([]Token, 0, len(tokens))
	i := 0

	for i < len(tokens) {
		end := findEllipsisEnd(tokens, i)
		if end < 0 {
			out = append(out, tokens[i])
			i++
			continue
		}

		leadWords := make([]string, 0, end-i+1)
		for _, tok := range tokens[i : end+1] {
			leadWords = append(leadWords, normalizeLeadWord(tok.Text))
		}

		// A single word trailing off is not enough evidence of a restart.
		if len(leadWords) < minLeadWords {
			out = append(out, tokens[i])
			i++
			continue
		}

		leadPhrase := strings.Join(leadWords, " ")
		nextPhrase := buildNextPhrase(tokens, end+1)

		if len(leadPhrase) >= minLeadPhraseChars && strings.Contains(nextPhrase, leadPhrase) {
			skippedUntil := tokens[end+1].StartMs
			log.add(LogEntry{
				Reason:         ReasonFalseStart,
				Text:           joinTokenText(tokens[i : end+1]),
				StartMs:        tokens[i].StartMs,
				SkippedUntilMs: &skippedUntil,
			})
			i = end + 1
			continue
		}

		out = append(out, tokens[i])
		i++
	}

	return out
}

// findEllipsisEnd scans up to falseStartLeadWindow tokens starting at i for
// one whose trimmed text ends in "..." or "…" and returns its index, or -1.
func findEllipsisEnd(tokens []Token, i int) int {
	limit := min(i+falseStartLeadWindow, len(tokens))
	for j := i; j < limit; j++ {
		if endsWithEllipsis(tokens[j].Text) {
			return j
		}
	}
	return -1
}

// buildNextPhrase joins the normalized text of up to falseStartLookahead
// tokens starting at index from.
func buildNextPhrase(tokens []Token, from int) string {
	limit := min(from+falseStartLookahead, len(tokens))
	words := make([]string, 0, limit-from)
	for j := from; j < limit; j++ {
		words = append(words, normalizeNextWord(tokens[j].Text))
	}
	return strings.Join(words, " ")
}
