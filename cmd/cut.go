package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pedro199288/reelforge-sub003/internal/worker"

	"github.com/spf13/cobra"
)

var cutCmd = &cobra.Command{
	Use:   "cut <transcript.json>",
	Short: "Remap captions through an edit cut-map",
	Long: `Cut forward-remaps original-timeline captions into the cut timeline using
a cut-map produced by the video editing stage, then re-runs cleanup to
remove artifacts a cut can introduce (use --no-cleanup to skip).`,
	Args: cobra.ExactArgs(1),
	RunE: runCut,
}

var (
	cutMapPath string
	cutOutput  string
	cutLog     string
	noCleanup  bool
)

func init() {
	cutCmd.Flags().StringVar(&cutMapPath, "cut-map", "", "cut-map JSON path (required)")
	cutCmd.Flags().StringVarP(&cutOutput, "output", "o", "", "output transcript JSON path (default: <input>.cut.json)")
	cutCmd.Flags().StringVar(&cutLog, "log", "", "write the cleanup audit log JSON to this path")
	cutCmd.Flags().BoolVar(&noCleanup, "no-cleanup", false, "skip the post-cut cleanup pass")
	cutCmd.Flags().StringVar(&settingsFile, "settings", "", "YAML settings file overriding the defaults")
	cutCmd.MarkFlagRequired("cut-map")

	addTuningFlags(cutCmd)

	rootCmd.AddCommand(cutCmd)
}

func runCut(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	if _, err := os.Stat(cutMapPath); os.IsNotExist(err) {
		return fmt.Errorf("cut-map not found: %s", cutMapPath)
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return worker.Cut(ctx, worker.Options{
		InputPath:  inputPath,
		OutputPath: cutOutput,
		LogPath:    cutLog,
		CutMapPath: cutMapPath,
		NoCleanup:  noCleanup,
		Settings:   settings,
	})
}
