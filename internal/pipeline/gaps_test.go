package pipeline

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func TestSplitAtSilenceGaps_Empty(t *testing.T) {
	chunks := SplitAtSilenceGaps(nil, 700)
	if chunks != nil {
		t.Errorf("expected nil for empty input, got %v", chunks)
	}
}

func TestSplitAtSilenceGaps_SingleToken(t *testing.T) {
	chunks := SplitAtSilenceGaps([]Token{tok("hi", 0, 100)}, 700)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if len(chunks[0]) != 1 {
		t.Errorf("chunk size = %d, want 1", len(chunks[0]))
	}
}

func TestSplitAtSilenceGaps_ExactThresholdSplits(t *testing.T) {
	// Gap of exactly 700ms must split: the boundary is inclusive on the
	// split side.
	tokens := []Token{
		tok("A", 0, 100),
		tok("B", 800, 900),
	}

	chunks := SplitAtSilenceGaps(tokens, 700)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks at exact threshold, got %d", len(chunks))
	}
	if chunks[0][0].Text != "A" || chunks[1][0].Text != "B" {
		t.Errorf("chunks = %v, want [[A] [B]]", chunks)
	}
}

func TestSplitAtSilenceGaps_BelowThresholdKeepsTogether(t *testing.T) {
	tokens := []Token{
		tok("A", 0, 100),
		tok("B", 799, 900),
	}

	chunks := SplitAtSilenceGaps(tokens, 700)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk below threshold, got %d", len(chunks))
	}
}

func TestSplitAtSilenceGaps_MultipleGaps(t *testing.T) {
	tokens := []Token{
		tok("a", 0, 100),
		tok("b", 150, 250),
		tok("c", 1000, 1100), // 750ms gap
		tok("d", 1150, 1250),
		tok("e", 2000, 2100), // 750ms gap
	}

	chunks := SplitAtSilenceGaps(tokens, 700)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}

	sizes := []int{len(chunks[0]), len(chunks[1]), len(chunks[2])}
	if !reflect.DeepEqual(sizes, []int{2, 2, 1}) {
		t.Errorf("chunk sizes = %v, want [2 2 1]", sizes)
	}
}

func TestSplitAtSilenceGaps_PartitionInvariant(t *testing.T) {
	// The chunks concatenated must equal the input exactly: no token is
	// duplicated, dropped, or reordered.
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 50; trial++ {
		tokens := randomTokens(rng, rng.IntN(40))

		chunks := SplitAtSilenceGaps(tokens, 700)

		var flattened []Token
		for _, chunk := range chunks {
			flattened = append(flattened, chunk...)
		}

		if len(tokens) == 0 {
			if flattened != nil {
				t.Fatalf("trial %d: expected no output for empty input", trial)
			}
			continue
		}
		if !reflect.DeepEqual(flattened, tokens) {
			t.Fatalf("trial %d: concatenated chunks differ from input", trial)
		}

		for i, chunk := range chunks {
			if len(chunk) == 0 {
				t.Fatalf("trial %d: chunk %d is empty", trial, i)
			}
		}
	}
}
