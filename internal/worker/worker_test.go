package worker

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pedro199288/reelforge-sub003/internal/config"
	"github.com/pedro199288/reelforge-sub003/internal/pipeline"
)

func writeTranscript(t *testing.T, dir string, tokens []pipeline.Token) string {
	t.Helper()
	path := filepath.Join(dir, "transcript.json")
	data, err := json.Marshal(pipeline.Transcript{Words: tokens})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func sampleTokens() []pipeline.Token {
	return []pipeline.Token{
		{Text: "Hello", StartMs: 0, EndMs: 400},
		{Text: " there", StartMs: 450, EndMs: 800},
		{Text: " world.", StartMs: 850, EndMs: 1200},
		{Text: " [music]", StartMs: 1300, EndMs: 1500},
		{Text: " Bye.", StartMs: 2400, EndMs: 2800},
	}
}

func TestClean_WritesPagesAndLog(t *testing.T) {
	dir := t.TempDir()
	input := writeTranscript(t, dir, sampleTokens())
	logPath := filepath.Join(dir, "cleanup.json")
	srtPath := filepath.Join(dir, "out.srt")

	opts := Options{
		InputPath: input,
		SRTPath:   srtPath,
		LogPath:   logPath,
		PageMode:  "words",
		Settings:  config.Default(),
	}
	if err := Clean(context.Background(), opts); err != nil {
		t.Fatalf("Clean: %v", err)
	}

	pagesPath := filepath.Join(dir, "transcript.pages.json")
	data, err := os.ReadFile(pagesPath)
	if err != nil {
		t.Fatalf("read pages output: %v", err)
	}
	var pages []pipeline.Page
	if err := json.Unmarshal(data, &pages); err != nil {
		t.Fatalf("parse pages output: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("len(pages) = %d, want 2: %v", len(pages), pages)
	}

	srtData, err := os.ReadFile(srtPath)
	if err != nil {
		t.Fatalf("read SRT output: %v", err)
	}
	if !strings.HasPrefix(string(srtData), "1\n00:00:00,000 --> ") {
		t.Errorf("unexpected SRT start: %q", srtData)
	}

	logData, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log output: %v", err)
	}
	var entries []pipeline.LogEntry
	if err := json.Unmarshal(logData, &entries); err != nil {
		t.Fatalf("parse log output: %v", err)
	}
	if len(entries) != 1 || entries[0].Reason != pipeline.ReasonSoundEffect {
		t.Errorf("log entries = %v, want one sound_effect entry", entries)
	}
}

func TestClean_ExplicitOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := writeTranscript(t, dir, sampleTokens())
	outPath := filepath.Join(dir, "custom.json")

	opts := Options{
		InputPath:  input,
		OutputPath: outPath,
		PageMode:   "words",
		Settings:   config.Default(),
	}
	if err := Clean(context.Background(), opts); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("custom output missing: %v", err)
	}
}

func TestClean_InvalidMode(t *testing.T) {
	dir := t.TempDir()
	input := writeTranscript(t, dir, sampleTokens())

	opts := Options{InputPath: input, PageMode: "sentences", Settings: config.Default()}
	if err := Clean(context.Background(), opts); err == nil {
		t.Error("expected error for unknown page mode")
	}
}

func TestClean_MissingInput(t *testing.T) {
	opts := Options{
		InputPath: filepath.Join(t.TempDir(), "missing.json"),
		PageMode:  "words",
		Settings:  config.Default(),
	}
	if err := Clean(context.Background(), opts); err == nil {
		t.Error("expected error for missing input")
	}
}

func TestCut_WritesRemappedTranscript(t *testing.T) {
	dir := t.TempDir()
	input := writeTranscript(t, dir, []pipeline.Token{
		{Text: "word", StartMs: 1500, EndMs: 1600},
	})

	cutMapPath := filepath.Join(dir, "cuts.json")
	cutMap := []pipeline.CutMapEntry{
		{SegmentIndex: 0, OriginalStartMs: 1000, OriginalEndMs: 2000, FinalStartMs: 0, FinalEndMs: 1000},
	}
	data, err := json.Marshal(cutMap)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cutMapPath, data, 0644); err != nil {
		t.Fatal(err)
	}

	opts := Options{
		InputPath:  input,
		CutMapPath: cutMapPath,
		Settings:   config.Default(),
	}
	if err := Cut(context.Background(), opts); err != nil {
		t.Fatalf("Cut: %v", err)
	}

	outData, err := os.ReadFile(filepath.Join(dir, "transcript.cut.json"))
	if err != nil {
		t.Fatalf("read cut output: %v", err)
	}
	var transcript pipeline.Transcript
	if err := json.Unmarshal(outData, &transcript); err != nil {
		t.Fatalf("parse cut output: %v", err)
	}
	if len(transcript.Words) != 1 {
		t.Fatalf("len(words) = %d, want 1", len(transcript.Words))
	}
	if transcript.Words[0].StartMs != 500 || transcript.Words[0].EndMs != 600 {
		t.Errorf("remapped = [%d, %d], want [500, 600]",
			transcript.Words[0].StartMs, transcript.Words[0].EndMs)
	}
}

func TestCut_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := Options{InputPath: "unused.json", Settings: config.Default()}
	if err := Cut(ctx, opts); err == nil {
		t.Error("expected context error")
	}
}
