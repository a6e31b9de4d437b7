package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/pdfoutline/internal/config"
	"github.com/dgallion1/pdfoutline/internal/pipeline"
)

var (
	extractInput  string
	extractOutput string
	extractQuiet  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the outline of a single document",
	Long: `Extract the outline of a single document and write it as JSON.

Examples:
  pdfoutline extract -i document.pdf -o outline.json
  pdfoutline extract --input report.pdf --output results.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(extractInput); err != nil {
			return fmt.Errorf("input file %q not found", extractInput)
		}

		log := newLogger(extractQuiet)
		proc := pipeline.NewProcessor(config.Load(), log)
		if err := proc.WriteFile(extractInput, extractOutput); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("✗")+" "+err.Error())
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✓")+" Outline extracted to: "+extractOutput)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "", "Input document path")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output JSON path")
	extractCmd.Flags().BoolVarP(&extractQuiet, "quiet", "q", false, "Suppress extraction logs")
	extractCmd.MarkFlagRequired("input")
	extractCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(extractCmd)
}

// newLogger builds the slog logger shared by the CLI commands. Quiet mode
// drops everything below error.
func newLogger(quiet bool) *slog.Logger {
	var w io.Writer = os.Stderr
	opts := &slog.HandlerOptions{}
	if quiet {
		opts.Level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
