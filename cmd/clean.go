package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pedro199288/reelforge-sub003/internal/config"
	"github.com/pedro199288/reelforge-sub003/internal/worker"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <transcript.json>",
	Short: "Clean a transcript and paginate it into subtitle pages",
	Long: `Clean runs the full cleanup pipeline (confidence filter, timing repair,
phantom-echo removal, false-start removal, repeated-phrase removal) on a
word-level transcript JSON file and writes the resulting subtitle pages.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

var (
	output       string
	srtOutput    string
	logOutput    string
	pageMode     string
	settingsFile string

	// Pipeline tuning flags.
	silenceGap      int
	minConfidence   float64
	maxWordDuration int
	maxPageWords    int
	maxPageDuration int
	shortTailWords  int
	shortTailMs     int
)

func init() {
	cleanCmd.Flags().StringVarP(&output, "output", "o", "", "output pages JSON path (default: <input>.pages.json)")
	cleanCmd.Flags().StringVar(&srtOutput, "srt", "", "also write an SRT file to this path")
	cleanCmd.Flags().StringVar(&logOutput, "log", "", "write the cleanup audit log JSON to this path")
	cleanCmd.Flags().StringVarP(&pageMode, "mode", "m", "words", "pagination mode: words or duration")
	cleanCmd.Flags().StringVar(&settingsFile, "settings", "", "YAML settings file overriding the defaults")

	addTuningFlags(cleanCmd)

	rootCmd.AddCommand(cleanCmd)
}

// addTuningFlags registers the shared pipeline threshold flags. Only one
// subcommand runs per invocation, so the flags bind to shared variables.
func addTuningFlags(cmd *cobra.Command) {
	defaults := config.Default()

	cmd.Flags().IntVar(&silenceGap, "silence-gap", defaults.SilenceGapMs, "silence gap chunk threshold in ms")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", defaults.MinConfidence, "minimum token confidence")
	cmd.Flags().IntVar(&maxWordDuration, "max-word-duration", defaults.MaxWordDurationMs, "maximum word duration in ms")
	cmd.Flags().IntVar(&maxPageWords, "max-page-words", defaults.MaxPageWords, "word-count pagination bound")
	cmd.Flags().IntVar(&maxPageDuration, "max-page-duration", defaults.MaxPageDurationMs, "duration pagination bound in ms")
	cmd.Flags().IntVar(&shortTailWords, "short-tail-words", defaults.ShortTailWords, "tail pages below this word count merge back")
	cmd.Flags().IntVar(&shortTailMs, "short-tail-ms", defaults.ShortTailMs, "tail pages below this span merge back")
}

func runClean(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return worker.Clean(ctx, worker.Options{
		InputPath:  inputPath,
		OutputPath: output,
		SRTPath:    srtOutput,
		LogPath:    logOutput,
		PageMode:   pageMode,
		Settings:   settings,
	})
}

// resolveSettings layers configuration: defaults, then the YAML settings
// file, then any explicitly set flags.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings := config.Default()

	if settingsFile != "" {
		loaded, err := config.LoadSettingsFile(settingsFile)
		if err != nil {
			if errors.Is(err, config.ErrSettingsNotFound) {
				return nil, fmt.Errorf("settings file not found: %s", settingsFile)
			}
			return nil, fmt.Errorf("load settings: %w", err)
		}
		settings = loaded
	}

	flagOverrides := map[string]func(){
		"silence-gap":       func() { settings.SilenceGapMs = silenceGap },
		"min-confidence":    func() { settings.MinConfidence = minConfidence },
		"max-word-duration": func() { settings.MaxWordDurationMs = maxWordDuration },
		"max-page-words":    func() { settings.MaxPageWords = maxPageWords },
		"max-page-duration": func() { settings.MaxPageDurationMs = maxPageDuration },
		"short-tail-words":  func() { settings.ShortTailWords = shortTailWords },
		"short-tail-ms":     func() { settings.ShortTailMs = shortTailMs },
	}
	for name, apply := range flagOverrides {
		if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
			apply()
		}
	}

	return settings, nil
}
