package pipeline

import "strings"

// Floors used by overlap repair: a shrunken token keeps at least
// minShrunkDurationMs of display time and yields overlapGuardMs to the
// token that follows it.
const (
	minShrunkDurationMs = 50
	overlapGuardMs      = 10
)

// FilterAndFixTiming drops low-confidence and bracketed-annotation tokens,
// then caps word durations and repairs overlaps between surviving
// neighbors. Filtering happens first so a dropped token never influences
// overlap repair. Survivors keep their original relative order.
func (c *Cleaner) FilterAndFixTiming(tokens []Token, log *Log) []Token {
	out := make([]Token, 0, len(tokens))

	for _, tok := range tokens {
		if tok.Confidence != nil && *tok.Confidence < c.MinConfidence {
			log.add(LogEntry{
				Reason:     ReasonLowConfidence,
				Text:       tok.Text,
				StartMs:    tok.StartMs,
				Confidence: tok.Confidence,
			})
			continue
		}

		// Bracketed non-speech annotations, e.g. "[music]".
		if strings.ContainsAny(tok.Text, "[]") {
			log.add(LogEntry{
				Reason:     ReasonSoundEffect,
				Text:       tok.Text,
				StartMs:    tok.StartMs,
				Confidence: tok.Confidence,
			})
			continue
		}

		out = appendWithTimingFix(out, tok, c.MaxWordDurationMs)
	}

	return out
}

// FixTimingOnly is the lossless timing normalizer: it caps durations and
// repairs overlaps without ever dropping a token. Re-running it on its own
// output is a no-op.
func FixTimingOnly(tokens []Token, maxWordDurationMs int) []Token {
	out := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		out = appendWithTimingFix(out, tok, maxWordDurationMs)
	}
	return out
}

// appendWithTimingFix caps tok's duration, shrinks the previous token if
// the two overlap, and appends tok.
func appendWithTimingFix(out []Token, tok Token, maxWordDurationMs int) []Token {
	if tok.EndMs-tok.StartMs > maxWordDurationMs {
		tok.EndMs = tok.StartMs + maxWordDurationMs
	}

	if n := len(out); n > 0 {
		prev := &out[n-1]
		if prev.EndMs > tok.StartMs {
			prev.EndMs = max(prev.StartMs+minShrunkDurationMs, tok.StartMs-overlapGuardMs)
		}
	}

	return append(out, tok)
}
