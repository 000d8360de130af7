package pipeline

import "fmt"

// Validate checks the input contract the pipeline stages themselves do not
// enforce: tokens sorted ascending by start time, with no negative
// durations. The stages stay total over malformed input; callers that want
// a precondition check run this first.
func Validate(tokens []Token) error {
	for i, tok := range tokens {
		if tok.EndMs < tok.StartMs {
			return fmt.Errorf("token %d %q: end %dms before start %dms", i, tok.Text, tok.EndMs, tok.StartMs)
		}
		if i > 0 && tok.StartMs < tokens[i-1].StartMs {
			return fmt.Errorf("token %d %q: start %dms out of order (previous starts at %dms)",
				i, tok.Text, tok.StartMs, tokens[i-1].StartMs)
		}
	}
	return nil
}
