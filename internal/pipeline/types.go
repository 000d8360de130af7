package pipeline

// Token is a single word-level caption from the speech-to-text engine.
// Text may carry leading whitespace so tokens concatenate back into the
// original transcript string.
type Token struct {
	Text       string   `json:"text"`
	StartMs    int      `json:"start_ms"`
	EndMs      int      `json:"end_ms"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// Chunk is a maximal run of tokens with no internal silence gap at or
// above the threshold.
type Chunk []Token

// Page is the final displayable subtitle unit.
type Page struct {
	StartMs int     `json:"start_ms"`
	EndMs   int     `json:"end_ms"`
	Words   []Token `json:"words"`
}

// Transcript is the top-level JSON structure produced by the STT engine.
type Transcript struct {
	Words []Token `json:"words"`
}

// RemovalReason identifies why a token was dropped during cleanup.
type RemovalReason string

const (
	ReasonLowConfidence  RemovalReason = "low_confidence"
	ReasonSoundEffect    RemovalReason = "sound_effect"
	ReasonRepeatedPhrase RemovalReason = "repeated_phrase"
	ReasonFalseStart     RemovalReason = "false_start"
	ReasonPhantomEcho    RemovalReason = "phantom_echo"
)

// LogEntry records one removal decision for audit display.
type LogEntry struct {
	Reason         RemovalReason `json:"reason"`
	Text           string        `json:"text"`
	StartMs        int           `json:"start_ms"`
	Confidence     *float64      `json:"confidence,omitempty"`
	SkippedUntilMs *int          `json:"skipped_until_ms,omitempty"`
}

// Log is an append-only audit trail of removal decisions. Entries appear
// in the order each cleanup stage discovers them, not globally time-sorted.
// A nil *Log is valid and discards entries.
type Log struct {
	entries []LogEntry
}

func (l *Log) add(e LogEntry) {
	if l == nil {
		return
	}
	l.entries = append(l.entries, e)
}

// Entries returns the recorded entries in discovery order.
func (l *Log) Entries() []LogEntry {
	if l == nil {
		return nil
	}
	return l.entries
}
