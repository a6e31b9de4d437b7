package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/pdfoutline/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "pdfoutline",
	Short: "Rule-based document outline extractor",
	Long: `pdfoutline classifies lines of extracted document text into a title and a
hierarchy of H1/H2/H3 headings tagged with page numbers, and writes the
result as JSON. It is a best-effort, pattern-matching classifier: no layout
or font analysis, just surface patterns over plain text.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("pdfoutline %s\n", version.String()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
