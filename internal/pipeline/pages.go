package pipeline

import (
	"fmt"
	"strings"

	"github.com/pedro199288/reelforge-sub003/internal/config"
)

// PageMode selects the pagination bound.
type PageMode int

const (
	// PageModeWords splits a sentence once eight words accumulate.
	PageModeWords PageMode = iota
	// PageModeDuration splits a sentence once the page span reaches the
	// duration bound, but only at a true word boundary.
	PageModeDuration
)

// ParsePageMode converts a CLI mode string to a PageMode.
func ParsePageMode(s string) (PageMode, error) {
	switch s {
	case "words":
		return PageModeWords, nil
	case "duration":
		return PageModeDuration, nil
	default:
		return 0, fmt.Errorf("unknown page mode: %q (want words or duration)", s)
	}
}

// Paginator turns cleaned tokens into display-ready pages. Pages never mix
// words from two different sentences or two different silence-gap chunks.
type Paginator struct {
	SilenceGapMs      int
	Mode              PageMode
	MaxPageWords      int
	MaxPageDurationMs int
	ShortTailWords    int
	ShortTailMs       int
}

// NewPaginator creates a paginator from pipeline settings.
func NewPaginator(mode PageMode, settings *config.Settings) *Paginator {
	return &Paginator{
		SilenceGapMs:      settings.SilenceGapMs,
		Mode:              mode,
		MaxPageWords:      settings.MaxPageWords,
		MaxPageDurationMs: settings.MaxPageDurationMs,
		ShortTailWords:    settings.ShortTailWords,
		ShortTailMs:       settings.ShortTailMs,
	}
}

// GroupIntoPages segments tokens at silence gaps, groups each chunk into
// sentences at terminal punctuation, and paginates each sentence. Pages
// appear in chunk, then sentence, then split order; their words
// concatenated equal the input exactly.
func (p *Paginator) GroupIntoPages(tokens []Token) []Page {
	var pages []Page

	for _, chunk := range SplitAtSilenceGaps(tokens, p.SilenceGapMs) {
		for _, sentence := range splitIntoSentences(chunk) {
			for _, part := range p.paginateSentence(sentence) {
				pages = append(pages, Page{
					StartMs: part[0].StartMs,
					EndMs:   part[len(part)-1].EndMs,
					Words:   part,
				})
			}
		}
	}

	return pages
}

// splitIntoSentences cuts a chunk after any token whose trimmed text ends
// with sentence-terminal punctuation. An unterminated trailing run forms a
// final sentence.
func splitIntoSentences(chunk Chunk) [][]Token {
	var sentences [][]Token
	start := 0

	for i, tok := range chunk {
		if endsSentence(tok.Text) {
			sentences = append(sentences, chunk[start:i+1])
			start = i + 1
		}
	}

	if start < len(chunk) {
		sentences = append(sentences, chunk[start:])
	}

	return sentences
}

// paginateSentence splits one sentence into page-sized parts and merges a
// short final part back into its predecessor when no real pause separates
// them.
func (p *Paginator) paginateSentence(sentence []Token) [][]Token {
	var parts [][]Token
	var current []Token

	for i, tok := range sentence {
		current = append(current, tok)

		// Never split directly before the sentence's last token.
		if i+1 >= len(sentence)-1 {
			continue
		}

		if p.shouldSplitAfter(current, sentence[i+1]) {
			parts = append(parts, current)
			current = nil
		}
	}
	if len(current) > 0 {
		parts = append(parts, current)
	}

	return p.mergeShortTail(parts)
}

func (p *Paginator) shouldSplitAfter(current []Token, next Token) bool {
	switch p.Mode {
	case PageModeDuration:
		span := current[len(current)-1].EndMs - current[0].StartMs
		return span >= p.MaxPageDurationMs && strings.HasPrefix(next.Text, " ")
	default:
		return len(current) >= p.MaxPageWords
	}
}

// mergeShortTail folds a short final part into the previous one unless the
// two are separated by a silence gap: a real pause must remain visible as
// a page break.
func (p *Paginator) mergeShortTail(parts [][]Token) [][]Token {
	if len(parts) < 2 {
		return parts
	}

	tail := parts[len(parts)-1]
	prev := parts[len(parts)-2]

	if !p.tailIsShort(tail) {
		return parts
	}
	if tail[0].StartMs-prev[len(prev)-1].EndMs >= p.SilenceGapMs {
		return parts
	}

	merged := make([]Token, 0, len(prev)+len(tail))
	merged = append(merged, prev...)
	merged = append(merged, tail...)
	return append(parts[:len(parts)-2], merged)
}

func (p *Paginator) tailIsShort(tail []Token) bool {
	switch p.Mode {
	case PageModeDuration:
		return tail[len(tail)-1].EndMs-tail[0].StartMs < p.ShortTailMs
	default:
		return len(tail) < p.ShortTailWords
	}
}
