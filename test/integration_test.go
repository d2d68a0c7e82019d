package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/papermeta/papermeta/internal/convert"
	"github.com/papermeta/papermeta/internal/extractor"
)

// TestIntegration_RecordAssembly runs the full assembler over the sample
// corpus and checks every field of every record.
func TestIntegration_RecordAssembly(t *testing.T) {
	e := extractor.New(extractor.DefaultOptions())

	for _, doc := range SampleDocs() {
		t.Run(doc.Name, func(t *testing.T) {
			rec := e.ExtractFromText(doc.Filename, doc.Text, doc.Tag)

			if rec.Filename != doc.Filename {
				t.Errorf("filename = %q, expected %q", rec.Filename, doc.Filename)
			}
			if rec.Authors != doc.Authors {
				t.Errorf("authors = %q, expected %q", rec.Authors, doc.Authors)
			}
			if rec.Abstract != doc.Abstract {
				t.Errorf("abstract = %q, expected %q", rec.Abstract, doc.Abstract)
			}
			if rec.Keywords != doc.Keywords {
				t.Errorf("keywords = %q, expected %q", rec.Keywords, doc.Keywords)
			}
			if rec.Notes != doc.Notes {
				t.Errorf("notes = %q, expected %q", rec.Notes, doc.Notes)
			}
		})
	}
}

// TestIntegration_ExtractorsAreIndependent verifies the three extractors
// share no state: running them in any order, any number of times, yields
// the same record.
func TestIntegration_ExtractorsAreIndependent(t *testing.T) {
	e := extractor.New(extractor.DefaultOptions())

	for _, doc := range SampleDocs() {
		first := e.ExtractFromText(doc.Filename, doc.Text, doc.Tag)

		// Interleave calls over other documents, then repeat.
		for _, other := range SampleDocs() {
			e.ExtractFromText(other.Filename, other.Text, other.Tag)
		}
		second := e.ExtractFromText(doc.Filename, doc.Text, doc.Tag)

		if *first != *second {
			t.Errorf("%s: extraction depends on history: %+v vs %+v", doc.Name, first, second)
		}
	}
}

// TestIntegration_BatchPreservesInputOrder drives the worker pool over a
// directory of files and restores input order from the task indices.
func TestIntegration_BatchPreservesInputOrder(t *testing.T) {
	dir := t.TempDir()

	// Unsupported extensions and a corrupt PDF: every input still yields
	// a record, and no single failure aborts the batch.
	filenames := []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "c.md"),
		filepath.Join(dir, "d.txt"),
	}
	if err := os.WriteFile(filenames[1], []byte("not really a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	pool := extractor.NewWorkerPool(2, extractor.DefaultOptions())
	pool.Start()

	go func() {
		for range pool.Progress() {
		}
	}()

	go pool.SubmitBatch(filenames)

	ordered := make([]*extractor.Result, len(filenames))
	for i := 0; i < len(filenames); i++ {
		res := <-pool.Results()
		if res.Err != nil {
			t.Errorf("task %d (%s) failed: %v", res.Task.Index, res.Task.Filename, res.Err)
			continue
		}
		ordered[res.Task.Index] = res.Result
	}
	pool.Wait()

	for i, result := range ordered {
		if result == nil {
			t.Fatalf("no result for input %d", i)
		}
		if result.Record.Filename != filenames[i] {
			t.Errorf("position %d holds %q, expected %q", i, result.Record.Filename, filenames[i])
		}
		if result.Record.Notes == "" {
			t.Errorf("%s: expected a diagnostic note", result.Record.Filename)
		}
	}

	if ordered[1].SourceType != convert.TypePDF {
		t.Errorf("b.pdf source type = %q", ordered[1].SourceType)
	}
}
