package pipeline

// CutMapEntry declares that the original-timeline interval
// [OriginalStartMs, OriginalEndMs) survives editing and appears at
// [FinalStartMs, FinalEndMs) in the cut output. Entries are expected
// pre-sorted by FinalStartMs ascending and non-overlapping in the final
// timeline.
type CutMapEntry struct {
	SegmentIndex    int `json:"segment_index"`
	OriginalStartMs int `json:"original_start_ms"`
	OriginalEndMs   int `json:"original_end_ms"`
	FinalStartMs    int `json:"final_start_ms"`
	FinalEndMs      int `json:"final_end_ms"`
}

// DeriveCutCaptions forward-remaps original-timeline tokens into the cut
// timeline. A token belongs to an entry when its start falls inside the
// entry's original interval; its end is clamped to the segment's final
// boundary so it cannot bleed past a cut point.
//
// When cleanup is true the remapped tokens are re-cleaned and given a
// final lossless timing pass, since a cut can introduce adjacency
// artifacts (such as a phantom echo straddling a cut boundary) that did
// not exist pre-cut.
func (c *Cleaner) DeriveCutCaptions(tokens []Token, cutMap []CutMapEntry, cleanup bool) ([]Token, []LogEntry) {
	var out []Token

	for _, entry := range cutMap {
		for _, tok := range tokens {
			if tok.StartMs < entry.OriginalStartMs || tok.StartMs >= entry.OriginalEndMs {
				continue
			}
			remapped := tok
			remapped.StartMs = entry.FinalStartMs + (tok.StartMs - entry.OriginalStartMs)
			remapped.EndMs = min(entry.FinalStartMs+(tok.EndMs-entry.OriginalStartMs), entry.FinalEndMs)
			out = append(out, remapped)
		}
	}

	if !cleanup {
		return out, nil
	}

	cleaned, log := c.FullCleanup(out)
	return FixTimingOnly(cleaned, c.MaxWordDurationMs), log
}
