package pipeline

import "github.com/pedro199288/reelforge-sub003/internal/config"

// Cleaner runs the transcript cleanup stages. All stages are pure; the
// only side channel is the audit log each stage appends to.
type Cleaner struct {
	SilenceGapMs      int
	MinConfidence     float64
	MaxWordDurationMs int
}

// NewCleaner creates a cleaner from pipeline settings.
func NewCleaner(settings *config.Settings) *Cleaner {
	return &Cleaner{
		SilenceGapMs:      settings.SilenceGapMs,
		MinConfidence:     settings.MinConfidence,
		MaxWordDurationMs: settings.MaxWordDurationMs,
	}
}

// FullCleanup runs all cleanup stages in fixed order and returns the
// cleaned tokens with the combined audit log.
//
// The order is load-bearing: confidence filtering runs before the
// pattern-based stages so hallucinated tokens cannot corrupt phrase
// comparisons, and phantom-echo removal runs before false-start detection
// because an un-removed echo can masquerade as a stutter.
func (c *Cleaner) FullCleanup(tokens []Token) ([]Token, []LogEntry) {
	log := &Log{}

	out := c.FilterAndFixTiming(tokens, log)
	out = c.RemovePhantomEchoes(out, log)
	out = c.RemoveFalseStarts(out, log)
	out = c.RemoveRepeatedPhrases(out, log)

	return out, log.Entries()
}
