package extractor

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// WorkerPool runs metadata extraction tasks in parallel. Extraction is a
// pure function of each document's text, so tasks need no coordination;
// results carry the input index so callers can restore input order.
type WorkerPool struct {
	ctx            context.Context
	cancel         context.CancelFunc
	tasks          chan Task
	results        chan TaskResult
	progressChan   chan ProgressUpdate
	extractor      *Extractor
	wg             sync.WaitGroup
	numWorkers     int
	totalTasks     int
	completedTasks int
	mu             sync.RWMutex
}

// Task is a single file to extract metadata from. Index is the position
// of the file in the submitted batch.
type Task struct {
	Index    int
	Filename string
}

// TaskResult is the outcome of one task.
type TaskResult struct {
	Task   Task
	Result *Result
	Err    error
}

// ProgressUpdate provides progress information for a task.
type ProgressUpdate struct {
	Index       int
	Filename    string
	Status      TaskStatus
	Message     string
	Completed   int
	Total       int
	ElapsedTime time.Duration
}

// TaskStatus represents the status of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// NewWorkerPool creates a pool of numWorkers workers sharing one
// Extractor configured with opts.
func NewWorkerPool(numWorkers int, opts Options) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 4
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		ctx:          ctx,
		cancel:       cancel,
		tasks:        make(chan Task, numWorkers*2),
		results:      make(chan TaskResult, numWorkers*2),
		progressChan: make(chan ProgressUpdate, 100),
		extractor:    New(opts),
		numWorkers:   numWorkers,
	}
}

// Start launches the workers.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *WorkerPool) worker(workerID int) {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.ctx.Done():
			return
		case task, ok := <-wp.tasks:
			if !ok {
				return
			}
			wp.processTask(workerID, task)
		}
	}
}

func (wp *WorkerPool) processTask(workerID int, task Task) {
	start := time.Now()

	wp.sendProgress(ProgressUpdate{
		Index:    task.Index,
		Filename: task.Filename,
		Status:   TaskStatusProcessing,
		Message:  fmt.Sprintf("Worker %d started processing", workerID),
	})

	result, err := wp.extractor.ExtractFromFile(task.Filename)
	elapsed := time.Since(start)

	wp.mu.Lock()
	wp.completedTasks++
	completed := wp.completedTasks
	total := wp.totalTasks
	wp.mu.Unlock()

	status := TaskStatusCompleted
	message := fmt.Sprintf("Worker %d completed in %v", workerID, elapsed)
	if err != nil {
		status = TaskStatusFailed
		message = fmt.Sprintf("Worker %d failed: %v", workerID, err)
	}

	wp.sendProgress(ProgressUpdate{
		Index:       task.Index,
		Filename:    task.Filename,
		Status:      status,
		Message:     message,
		Completed:   completed,
		Total:       total,
		ElapsedTime: elapsed,
	})

	wp.results <- TaskResult{
		Task:   task,
		Result: result,
		Err:    err,
	}
}

// sendProgress sends a progress update unless the channel is full.
func (wp *WorkerPool) sendProgress(update ProgressUpdate) {
	select {
	case wp.progressChan <- update:
	default:
		// Skip the update rather than block a worker.
	}
}

// SubmitTask submits a task to the pool.
func (wp *WorkerPool) SubmitTask(task Task) {
	wp.mu.Lock()
	wp.totalTasks++
	wp.mu.Unlock()

	wp.sendProgress(ProgressUpdate{
		Index:    task.Index,
		Filename: task.Filename,
		Status:   TaskStatusPending,
		Message:  "Task queued for processing",
	})

	select {
	case wp.tasks <- task:
	case <-wp.ctx.Done():
	}
}

// SubmitBatch submits one task per filename, indexed in input order.
// The tasks and results channels are bounded, so for batches larger than
// the buffers the caller must drain Results concurrently with submission.
func (wp *WorkerPool) SubmitBatch(filenames []string) {
	for i, filename := range filenames {
		wp.SubmitTask(Task{Index: i, Filename: filename})
	}
}

// Results returns the results channel.
func (wp *WorkerPool) Results() <-chan TaskResult {
	return wp.results
}

// Progress returns the progress channel.
func (wp *WorkerPool) Progress() <-chan ProgressUpdate {
	return wp.progressChan
}

// Wait waits for all submitted tasks to complete and closes the pool.
func (wp *WorkerPool) Wait() {
	close(wp.tasks)
	wp.wg.Wait()
	close(wp.results)
	close(wp.progressChan)
}

// Shutdown cancels outstanding work and closes the pool.
func (wp *WorkerPool) Shutdown() {
	wp.cancel()
	wp.Wait()
}

// Stats returns current processing statistics.
func (wp *WorkerPool) Stats() WorkerPoolStats {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	return WorkerPoolStats{
		TotalTasks:     wp.totalTasks,
		CompletedTasks: wp.completedTasks,
		PendingTasks:   wp.totalTasks - wp.completedTasks,
		NumWorkers:     wp.numWorkers,
	}
}

// WorkerPoolStats provides statistics about the worker pool.
type WorkerPoolStats struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	PendingTasks   int `json:"pending_tasks"`
	NumWorkers     int `json:"num_workers"`
}

// ProgressTracker aggregates progress updates for a batch.
type ProgressTracker struct {
	startTime    time.Time
	taskStatuses map[int]TaskStatus
	mu           sync.RWMutex
}

// NewProgressTracker creates a new progress tracker.
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{
		startTime:    time.Now(),
		taskStatuses: make(map[int]TaskStatus),
	}
}

// Update records a progress update.
func (pt *ProgressTracker) Update(update ProgressUpdate) {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.taskStatuses[update.Index] = update.Status
}

// Summary returns counts per status and the elapsed time.
func (pt *ProgressTracker) Summary() ProgressSummary {
	pt.mu.RLock()
	defer pt.mu.RUnlock()

	summary := ProgressSummary{
		ElapsedTime:  time.Since(pt.startTime),
		StatusCounts: make(map[TaskStatus]int),
	}
	for _, status := range pt.taskStatuses {
		summary.StatusCounts[status]++
	}
	summary.TotalTasks = len(pt.taskStatuses)

	return summary
}

// ProgressSummary summarizes batch progress.
type ProgressSummary struct {
	StatusCounts map[TaskStatus]int `json:"status_counts"`
	ElapsedTime  time.Duration      `json:"elapsed_time"`
	TotalTasks   int                `json:"total_tasks"`
}

// PrintProgress prints a one-line progress report, overwriting the
// current terminal line.
func (pt *ProgressTracker) PrintProgress() {
	summary := pt.Summary()

	completed := summary.StatusCounts[TaskStatusCompleted]
	failed := summary.StatusCounts[TaskStatusFailed]
	processing := summary.StatusCounts[TaskStatusProcessing]

	fmt.Printf("\r🔄 Progress: %d/%d completed", completed, summary.TotalTasks)
	if failed > 0 {
		fmt.Printf(" (%d failed)", failed)
	}
	if processing > 0 {
		fmt.Printf(" (%d processing)", processing)
	}
	if summary.TotalTasks > 0 {
		fmt.Printf(" [%.1f%%]", float64(completed)/float64(summary.TotalTasks)*100)
	}
	fmt.Printf(" [%v elapsed]", summary.ElapsedTime.Round(time.Second))
}
