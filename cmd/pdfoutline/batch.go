package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dgallion1/pdfoutline/internal/config"
	"github.com/dgallion1/pdfoutline/internal/pipeline"
)

var (
	batchInput   string
	batchOutput  string
	batchWorkers int
	batchQuiet   bool
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract outlines for every document in a directory",
	Long: `Process every supported document in the input directory, writing one
<name>.json outline per document into the output directory. Files that fail
are skipped; the command exits non-zero only when every file fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if batchInput != "" {
			cfg.InputDir = batchInput
		}
		if batchOutput != "" {
			cfg.OutputDir = batchOutput
		}
		if batchWorkers > 0 {
			cfg.WorkerCount = batchWorkers
		}

		log := newLogger(batchQuiet)
		proc := pipeline.NewProcessor(cfg, log)

		summary, err := proc.RunBatch(cmd.Context(), cfg.InputDir, cfg.OutputDir)
		if summary != nil {
			out := cmd.OutOrStdout()
			for _, r := range summary.Results {
				if r.Err != nil {
					fmt.Fprintln(out, errorStyle.Render("✗")+" "+r.Filename+dimStyle.Render(" — "+r.Err.Error()))
				} else {
					fmt.Fprintln(out, successStyle.Render("✓")+" "+r.Filename+dimStyle.Render(" -> "+r.Output))
				}
			}
			fmt.Fprintf(out, "\nProcessing complete: %d/%d files successful\n",
				summary.Succeeded, summary.Succeeded+summary.Failed)
		}
		return err
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchInput, "input", "", "Input directory (default $INPUT_DIR or /app/input)")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "Output directory (default $OUTPUT_DIR or /app/output)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent documents (default $WORKER_COUNT or 4)")
	batchCmd.Flags().BoolVarP(&batchQuiet, "quiet", "q", false, "Suppress extraction logs")

	rootCmd.AddCommand(batchCmd)
}
