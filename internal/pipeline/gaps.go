package pipeline

// SplitAtSilenceGaps partitions tokens into time-contiguous chunks. A new
// chunk begins whenever the pause between adjacent tokens reaches gapMs;
// a gap exactly equal to the threshold splits. The chunks concatenated in
// order equal the input exactly.
func SplitAtSilenceGaps(tokens []Token, gapMs int) []Chunk {
	if len(tokens) == 0 {
		return nil
	}

	var chunks []Chunk
	start := 0

	for i := 1; i < len(tokens); i++ {
		if tokens[i].StartMs-tokens[i-1].EndMs >= gapMs {
			chunks = append(chunks, Chunk(tokens[start:i]))
			start = i
		}
	}

	return append(chunks, Chunk(tokens[start:]))
}
