package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestNewWorkerPool(t *testing.T) {
	pool := NewWorkerPool(4, DefaultOptions())
	if pool == nil {
		t.Fatal("NewWorkerPool returned nil")
	}
	if pool.numWorkers != 4 {
		t.Errorf("expected 4 workers, got %d", pool.numWorkers)
	}
	if pool.tasks == nil || pool.results == nil || pool.progressChan == nil {
		t.Error("pool channels not initialized")
	}

	pool.Shutdown()
}

func TestNewWorkerPoolDefaultsWorkers(t *testing.T) {
	pool := NewWorkerPool(0, DefaultOptions())
	if pool.numWorkers <= 0 {
		t.Errorf("expected positive default worker count, got %d", pool.numWorkers)
	}
	pool.Shutdown()
}

func TestWorkerPoolProcessing(t *testing.T) {
	dir := t.TempDir()

	// A mix of outcomes: unreadable PDFs fail, unsupported names succeed
	// with a note, a corrupt PDF degrades to an empty record.
	corrupt := filepath.Join(dir, "corrupt.pdf")
	if err := os.WriteFile(corrupt, []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	filenames := []string{
		filepath.Join(dir, "missing.pdf"),
		filepath.Join(dir, "notes.txt"),
		corrupt,
	}

	pool := NewWorkerPool(2, DefaultOptions())
	pool.Start()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range pool.Progress() {
			// Drain so full channels never stall workers.
		}
	}()

	pool.SubmitBatch(filenames)

	byIndex := make(map[int]TaskResult)
	for i := 0; i < len(filenames); i++ {
		res := <-pool.Results()
		byIndex[res.Task.Index] = res
	}

	pool.Wait()
	wg.Wait()

	if len(byIndex) != len(filenames) {
		t.Fatalf("expected %d distinct indices, got %d", len(filenames), len(byIndex))
	}

	if res := byIndex[0]; res.Err == nil {
		t.Error("expected error for missing pdf")
	}
	if res := byIndex[1]; res.Err != nil {
		t.Errorf("unexpected error for unsupported file: %v", res.Err)
	} else if res.Result.Record.Notes != NoteUnsupportedType {
		t.Errorf("notes = %q, expected %q", res.Result.Record.Notes, NoteUnsupportedType)
	}
	if res := byIndex[2]; res.Err != nil {
		t.Errorf("unexpected error for corrupt pdf: %v", res.Err)
	} else if res.Result.Record.Notes != NoteLowTextYield {
		t.Errorf("notes = %q, expected %q", res.Result.Record.Notes, NoteLowTextYield)
	}

	stats := pool.Stats()
	if stats.TotalTasks != len(filenames) || stats.CompletedTasks != len(filenames) {
		t.Errorf("stats = %+v, expected all tasks accounted for", stats)
	}
}

func TestWorkerPoolIndicesCoverBatch(t *testing.T) {
	n := 8
	filenames := make([]string, n)
	for i := range filenames {
		filenames[i] = fmt.Sprintf("file-%d.unknown", i)
	}

	pool := NewWorkerPool(3, DefaultOptions())
	pool.Start()

	go func() {
		for range pool.Progress() {
		}
	}()

	pool.SubmitBatch(filenames)

	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		res := <-pool.Results()
		if res.Task.Index < 0 || res.Task.Index >= n {
			t.Errorf("index %d out of range", res.Task.Index)
		}
		if seen[res.Task.Index] {
			t.Errorf("index %d delivered twice", res.Task.Index)
		}
		seen[res.Task.Index] = true
	}

	pool.Wait()
}

// A batch far larger than the channel buffers must still complete:
// submission runs concurrently with collection, so bounded channels never
// wedge the pool.
func TestWorkerPoolLargeBatch(t *testing.T) {
	const n = 30
	const workers = 2 // buffers hold workers*2 entries, well below n

	filenames := make([]string, n)
	for i := range filenames {
		filenames[i] = fmt.Sprintf("file-%d.unknown", i)
	}

	pool := NewWorkerPool(workers, DefaultOptions())
	pool.Start()

	go func() {
		for range pool.Progress() {
		}
	}()

	go pool.SubmitBatch(filenames)

	done := make(chan map[int]bool, 1)
	go func() {
		seen := make(map[int]bool, n)
		for i := 0; i < n; i++ {
			res := <-pool.Results()
			seen[res.Task.Index] = true
		}
		done <- seen
	}()

	select {
	case seen := <-done:
		if len(seen) != n {
			t.Errorf("expected %d distinct indices, got %d", n, len(seen))
		}
	case <-time.After(30 * time.Second):
		t.Fatal("large batch did not complete: pool wedged on bounded channels")
	}

	pool.Wait()
}

func TestProgressTracker(t *testing.T) {
	pt := NewProgressTracker()

	pt.Update(ProgressUpdate{Index: 0, Status: TaskStatusProcessing})
	pt.Update(ProgressUpdate{Index: 0, Status: TaskStatusCompleted})
	pt.Update(ProgressUpdate{Index: 1, Status: TaskStatusFailed})

	summary := pt.Summary()
	if summary.TotalTasks != 2 {
		t.Errorf("total tasks = %d, expected 2", summary.TotalTasks)
	}
	if summary.StatusCounts[TaskStatusCompleted] != 1 {
		t.Errorf("completed = %d, expected 1", summary.StatusCounts[TaskStatusCompleted])
	}
	if summary.StatusCounts[TaskStatusFailed] != 1 {
		t.Errorf("failed = %d, expected 1", summary.StatusCounts[TaskStatusFailed])
	}
	if summary.ElapsedTime < 0 || summary.ElapsedTime > time.Minute {
		t.Errorf("implausible elapsed time %v", summary.ElapsedTime)
	}
}
