package pipeline

// RemovePhantomEchoes drops hallucinated single-token chunks that
// duplicate the first word of the following chunk, a pattern produced by
// breath or pre-articulation noise ahead of the real utterance.
//
// Only chunks containing exactly one token are candidates, only the
// immediately following chunk is consulted, and the last chunk is never
// dropped.
func (c *Cleaner) RemovePhantomEchoes(tokens []Token, log *Log) []Token {
	chunks := SplitAtSilenceGaps(tokens, c.SilenceGapMs)
	if len(chunks) < 2 {
		return tokens
	}

	out := make([]Token, 0, len(tokens))

	for i, chunk := range chunks {
		if len(chunk) == 1 && i+1 < len(chunks) {
			echo := chunk[0]
			next := chunks[i+1][0]
			if normalizeEchoText(echo.Text) == normalizeEchoText(next.Text) {
				log.add(LogEntry{
					Reason:     ReasonPhantomEcho,
					Text:       echo.Text,
					StartMs:    echo.StartMs,
					Confidence: echo.Confidence,
				})
				continue
			}
		}
		out = append(out, chunk...)
	}

	return out
}
