package pipeline

import (
	"strings"
	"unicode/utf8"
)

// echoStripSet is the punctuation removed when comparing a suspected
// phantom echo against the start of the next utterance.
var echoStripSet = map[rune]struct{}{
	'.': {}, ',': {}, '!': {}, '?': {},
	'…': {}, // …
}

// nextPhraseStripSet is the punctuation removed from lookahead tokens in
// false-start detection. The ellipsis is deliberately not in this set.
var nextPhraseStripSet = map[rune]struct{}{
	'.': {}, ',': {}, '!': {}, '?': {},
}

// sentenceTerminals mark the end of a sentence when they close a token.
var sentenceTerminals = map[rune]struct{}{
	'.': {}, '?': {}, '!': {},
	'…': {}, // …
}

// stripRunes removes every rune in set from s.
func stripRunes(s string, set map[rune]struct{}) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if _, ok := set[r]; ok {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeEchoText trims, lowercases, and strips terminal punctuation so
// the echo comparison agrees with the other stages on word equality.
func normalizeEchoText(s string) string {
	return stripRunes(strings.ToLower(strings.TrimSpace(s)), echoStripSet)
}

// normalizeLeadWord prepares a false-start lead token: trimmed, lowercased,
// with the ellipsis (both "..." and the single rune) removed.
func normalizeLeadWord(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "...", "")
	return strings.ReplaceAll(s, "…", "")
}

// normalizeNextWord prepares a false-start lookahead token.
func normalizeNextWord(s string) string {
	return stripRunes(strings.ToLower(strings.TrimSpace(s)), nextPhraseStripSet)
}

// endsWithEllipsis reports whether the trimmed text ends in "..." or "…".
func endsWithEllipsis(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasSuffix(s, "...") || strings.HasSuffix(s, "…")
}

// endsSentence reports whether the trimmed text ends with sentence-terminal
// punctuation (. ? ! …).
func endsSentence(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(s)
	_, ok := sentenceTerminals[last]
	return ok
}

// joinTokenText concatenates raw token texts and trims the result, used for
// audit log entries covering multi-token spans.
func joinTokenText(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return strings.TrimSpace(b.String())
}
