package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/papermeta/papermeta/internal/extractor"
)

var (
	outPath          string
	batchMode        bool
	numWorkers       int
	showProgress     bool
	frontMatterLines int
	authorCandidates int
	minPDFChars      int
)

// csvColumns is the export column contract, one row per input document.
var csvColumns = []string{"filename", "authors", "abstract", "keywords", "notes"}

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [file...]",
	Short: "Extract bibliographic metadata from documents",
	Long: `Extract locates authors, abstract, and keywords in PDF and Word
documents and emits one record per input file, in input order.

Files the converter cannot handle produce a record with empty fields and
an explanatory note; they never abort the batch.

Examples:
  papermeta extract paper.pdf
  papermeta extract --format csv --out metadata.csv papers/*.pdf
  papermeta extract --batch --workers 8 *.pdf *.docx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&outPath, "out", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&batchMode, "batch", false, "process files in parallel")
	extractCmd.Flags().IntVar(&numWorkers, "workers", runtime.NumCPU(), "number of parallel workers for batch mode")
	extractCmd.Flags().BoolVar(&showProgress, "progress", true, "show progress during batch processing")
	extractCmd.Flags().IntVar(&frontMatterLines, "front-matter-lines", 40, "document lines searched for the author list")
	extractCmd.Flags().IntVar(&authorCandidates, "author-candidates", 8, "filtered lines examined for personal names")
	extractCmd.Flags().IntVar(&minPDFChars, "min-pdf-chars", 200, "non-whitespace character threshold for the scanned-PDF note")
}

func runExtract(cmd *cobra.Command, args []string) error {
	opts := extractor.Options{
		FrontMatterLines: frontMatterLines,
		AuthorCandidates: authorCandidates,
		MinPDFTextRunes:  minPDFChars,
	}

	var results []*extractor.Result
	if batchMode {
		results = processBatchParallel(args, opts)
	} else {
		results = processSequential(args, opts)
	}

	w := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return outputResults(w, results)
}

func processSequential(filenames []string, opts extractor.Options) []*extractor.Result {
	e := extractor.New(opts)

	results := make([]*extractor.Result, 0, len(filenames))
	for _, filename := range filenames {
		if !quiet {
			fmt.Fprintf(os.Stderr, "Processing %s...\n", filename)
		}

		result, err := e.ExtractFromFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "❌ Failed to process %s: %v\n", filename, err)
			result = failureResult(filename)
		}
		results = append(results, result)
	}

	return results
}

func processBatchParallel(filenames []string, opts extractor.Options) []*extractor.Result {
	workers := numWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if !quiet {
		fmt.Fprintf(os.Stderr, "🚀 Processing %d files with %d workers...\n", len(filenames), workers)
	}

	pool := extractor.NewWorkerPool(workers, opts)
	pool.Start()

	var progressTracker *extractor.ProgressTracker
	var progressMu sync.Mutex
	if showProgress && !quiet {
		progressTracker = extractor.NewProgressTracker()

		go func() {
			ticker := time.NewTicker(500 * time.Millisecond)
			defer ticker.Stop()

			for range ticker.C {
				progressMu.Lock()
				if progressTracker != nil {
					progressTracker.PrintProgress()
				}
				progressMu.Unlock()
			}
		}()
	}

	go func() {
		for update := range pool.Progress() {
			progressMu.Lock()
			if progressTracker != nil {
				progressTracker.Update(update)
			}
			progressMu.Unlock()

			if !quiet && update.Status == extractor.TaskStatusFailed {
				fmt.Fprintf(os.Stderr, "\n❌ %s\n", update.Message)
			}
		}
	}()

	// Submit from a goroutine: the tasks and results channels are bounded,
	// so the collection loop below must be draining while submission is
	// still in flight or a batch larger than the buffers deadlocks.
	go pool.SubmitBatch(filenames)

	// Completion order is arbitrary; the index restores input order.
	results := make([]*extractor.Result, len(filenames))
	for i := 0; i < len(filenames); i++ {
		res := <-pool.Results()
		if res.Err != nil {
			results[res.Task.Index] = failureResult(res.Task.Filename)
			continue
		}
		results[res.Task.Index] = res.Result
	}

	pool.Wait()

	if showProgress && !quiet {
		progressMu.Lock()
		if progressTracker != nil {
			progressTracker.PrintProgress()
			fmt.Println()
		}
		progressTracker = nil
		progressMu.Unlock()
	}

	return results
}

// failureResult stands in for a file that could not be read at all.
func failureResult(filename string) *extractor.Result {
	return &extractor.Result{
		Record: extractor.Record{
			Filename: filename,
			Notes:    "Unreadable file",
		},
	}
}

func outputResults(w io.Writer, results []*extractor.Result) error {
	switch strings.ToLower(format) {
	case "json":
		return outputJSON(w, results)
	case "csv":
		return outputCSV(w, results)
	case "human":
		return outputHuman(w, results)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func outputJSON(w io.Writer, results []*extractor.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// outputCSV writes one row per record. The leading UTF-8 BOM keeps
// non-ASCII author and keyword characters intact through spreadsheet
// imports.
func outputCSV(w io.Writer, results []*extractor.Result) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(csvColumns); err != nil {
		return err
	}

	for _, result := range results {
		rec := result.Record
		row := []string{rec.Filename, rec.Authors, rec.Abstract, rec.Keywords, rec.Notes}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

func outputHuman(w io.Writer, results []*extractor.Result) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Authors", "Abstract", "Keywords", "Notes"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetRowLine(false)

	extracted := 0
	for _, result := range results {
		rec := result.Record
		if rec.Authors != "" || rec.Abstract != "" || rec.Keywords != "" {
			extracted++
		}

		table.Append([]string{
			rec.Filename,
			elide(rec.Authors, 40),
			elide(rec.Abstract, 60),
			elide(rec.Keywords, 40),
			rec.Notes,
		})
	}

	table.Render()

	if !quiet {
		fmt.Fprintf(os.Stderr, "📄 %d files, %d with extracted metadata\n", len(results), extracted)
	}

	return nil
}

// elide truncates s to at most n runes, appending an ellipsis when
// anything was cut.
func elide(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
