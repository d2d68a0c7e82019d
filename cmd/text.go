package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papermeta/papermeta/internal/convert"
)

var textOutFile string

// textCmd represents the text command
var textCmd = &cobra.Command{
	Use:   "text [file]",
	Short: "Dump the converted plain text of a document",
	Long: `Text prints the plain text the converter extracts from a PDF or Word
document, which is the exact input the metadata heuristics see. Useful
for debugging extraction quality on a document that produces unexpected
records.

Examples:
  papermeta text paper.pdf
  papermeta text --out paper.txt paper.docx`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)

	textCmd.Flags().StringVarP(&textOutFile, "out", "o", "", "output file (default: stdout)")
}

func runText(cmd *cobra.Command, args []string) error {
	filename := args[0]

	tag := convert.Detect(filename)
	if tag == convert.TypeUnknown {
		return fmt.Errorf("unsupported file type: %s", filename)
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "Converting %s to text...\n", filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	text, err := convert.Text(f, tag)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", filename, err)
	}
	if text == "" && !quiet {
		fmt.Fprintf(os.Stderr, "⚠️  No readable text found in %s\n", filename)
	}

	if textOutFile != "" {
		if err := os.WriteFile(textOutFile, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "Converted text written to %s\n", textOutFile)
		}
		return nil
	}

	fmt.Fprint(os.Stdout, text)

	return nil
}
