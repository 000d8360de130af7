package config

// Settings holds all transcript cleanup and pagination parameters.
type Settings struct {
	// SilenceGapMs is the pause length that splits the token stream into
	// chunks. A gap exactly equal to the threshold splits.
	SilenceGapMs int `yaml:"silenceGapMs"`
	// MinConfidence is the floor below which a token is dropped as a
	// likely hallucination.
	MinConfidence float64 `yaml:"minConfidence"`
	// MaxWordDurationMs caps how long a single word may stay on screen.
	MaxWordDurationMs int `yaml:"maxWordDurationMs"`

	// MaxPageWords is the word-count pagination bound.
	MaxPageWords int `yaml:"maxPageWords"`
	// MaxPageDurationMs is the duration pagination bound.
	MaxPageDurationMs int `yaml:"maxPageDurationMs"`
	// ShortTailWords and ShortTailMs decide when a final page part is
	// merged back into its predecessor.
	ShortTailWords int `yaml:"shortTailWords"`
	ShortTailMs    int `yaml:"shortTailMs"`
}

// Default returns Settings with the pipeline's standard thresholds.
func Default() *Settings {
	return &Settings{
		SilenceGapMs:      700,
		MinConfidence:     0.15,
		MaxWordDurationMs: 800,
		MaxPageWords:      8,
		MaxPageDurationMs: 1200,
		ShortTailWords:    3,
		ShortTailMs:       700,
	}
}
