package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pedro199288/reelforge-sub003/internal/config"
	"github.com/pedro199288/reelforge-sub003/internal/pipeline"
	"github.com/pedro199288/reelforge-sub003/internal/srt"
)

// Options configures the worker.
type Options struct {
	InputPath  string
	OutputPath string
	SRTPath    string
	LogPath    string
	PageMode   string
	CutMapPath string
	NoCleanup  bool
	Settings   *config.Settings
}

// Clean reads a word-level transcript, runs the full cleanup pipeline,
// paginates the result, and writes the page output files.
func Clean(ctx context.Context, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tokens, err := readTranscript(opts.InputPath)
	if err != nil {
		return err
	}

	mode, err := pipeline.ParsePageMode(opts.PageMode)
	if err != nil {
		return err
	}

	warnIfMalformed(tokens)

	cleaner := pipeline.NewCleaner(opts.Settings)
	cleaned, log := cleaner.FullCleanup(tokens)
	slog.Info("cleanup complete", "in", len(tokens), "out", len(cleaned), "removed", len(log))

	pages := pipeline.NewPaginator(mode, opts.Settings).GroupIntoPages(cleaned)
	slog.Info("pagination complete", "pages", len(pages))

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = strings.TrimSuffix(opts.InputPath, filepath.Ext(opts.InputPath)) + ".pages.json"
	}
	if err := writeJSON(outputPath, pages); err != nil {
		return fmt.Errorf("write pages: %w", err)
	}
	slog.Info("pages saved", "path", outputPath)

	if opts.SRTPath != "" {
		if err := os.WriteFile(opts.SRTPath, []byte(srt.Render(pages)), 0644); err != nil {
			return fmt.Errorf("write SRT: %w", err)
		}
		slog.Info("SRT saved", "path", opts.SRTPath)
	}

	return writeLog(opts.LogPath, log)
}

// Cut reads a transcript and a cut-map, remaps the tokens into the cut
// timeline, and writes the remapped transcript (with cleanup re-run unless
// disabled).
func Cut(ctx context.Context, opts Options) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tokens, err := readTranscript(opts.InputPath)
	if err != nil {
		return err
	}

	cutMap, err := readCutMap(opts.CutMapPath)
	if err != nil {
		return err
	}

	warnIfMalformed(tokens)

	cleaner := pipeline.NewCleaner(opts.Settings)
	remapped, log := cleaner.DeriveCutCaptions(tokens, cutMap, !opts.NoCleanup)
	slog.Info("cut captions derived",
		"in", len(tokens), "out", len(remapped), "segments", len(cutMap), "removed", len(log))

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = strings.TrimSuffix(opts.InputPath, filepath.Ext(opts.InputPath)) + ".cut.json"
	}
	if err := writeJSON(outputPath, pipeline.Transcript{Words: remapped}); err != nil {
		return fmt.Errorf("write cut transcript: %w", err)
	}
	slog.Info("cut transcript saved", "path", outputPath)

	return writeLog(opts.LogPath, log)
}

// warnIfMalformed surfaces contract violations without rejecting the
// input; the pipeline stages stay total over whatever the STT engine sent.
func warnIfMalformed(tokens []pipeline.Token) {
	if err := pipeline.Validate(tokens); err != nil {
		slog.Warn("transcript violates input contract", "err", err)
	}
}

func readTranscript(path string) ([]pipeline.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	var transcript pipeline.Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	return transcript.Words, nil
}

func readCutMap(path string) ([]pipeline.CutMapEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cut-map: %w", err)
	}
	var cutMap []pipeline.CutMapEntry
	if err := json.Unmarshal(data, &cutMap); err != nil {
		return nil, fmt.Errorf("parse cut-map: %w", err)
	}
	return cutMap, nil
}

func writeLog(path string, log []pipeline.LogEntry) error {
	if path == "" {
		return nil
	}
	if log == nil {
		log = []pipeline.LogEntry{}
	}
	if err := writeJSON(path, log); err != nil {
		return fmt.Errorf("write cleanup log: %w", err)
	}
	slog.Info("cleanup log saved", "path", path)
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
