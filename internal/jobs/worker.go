package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bhumicrm/bhumi-api/pkg/logger"
)

// Job is a unit of background work.
type Job func(ctx context.Context) error

// Worker runs queued jobs on a fixed pool and recurring jobs on tickers.
// Everything here is in-process: a deploy restart loses queued work, which is
// acceptable because every job recomputes from the record store.
type Worker struct {
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	queue    chan Job
	asyncSem chan struct{}
	stats    WorkerStats
	statsMu  sync.RWMutex
}

// WorkerStats is a point-in-time snapshot of worker activity.
// FinishedJobs counts every job that ran to the end; FailedJobs is the subset
// that returned an error or panicked.
type WorkerStats struct {
	ActiveJobs   int   `json:"active_jobs"`
	FinishedJobs int64 `json:"finished_jobs"`
	FailedJobs   int64 `json:"failed_jobs"`
	QueueLength  int   `json:"queue_length"`
	MaxAsync     int   `json:"max_async"`
}

// NewWorker starts numWorkers queue processors. Fire-and-forget jobs get
// their own goroutines bounded by a separate semaphore so a burst of emails
// cannot starve the scheduled jobs.
func NewWorker(numWorkers int) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	asyncLimit := numWorkers * 2
	if asyncLimit < 10 {
		asyncLimit = 10
	}

	w := &Worker{
		ctx:      ctx,
		cancel:   cancel,
		queue:    make(chan Job, 100),
		asyncSem: make(chan struct{}, asyncLimit),
	}

	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.process(i)
	}

	return w
}

// Enqueue hands a job to the pool. When the queue is full the job runs
// inline so nothing is silently dropped.
func (w *Worker) Enqueue(job Job) {
	select {
	case w.queue <- job:
	default:
		logger.Warn("[Worker] Queue full, running job inline")
		w.run("inline", job)
	}
}

// EnqueueAsync runs a job on its own goroutine, bounded by the async
// semaphore. Used for notification and email sends that must not block the
// request path.
func (w *Worker) EnqueueAsync(job Job) {
	go func() {
		w.asyncSem <- struct{}{}
		defer func() { <-w.asyncSem }()

		w.wg.Add(1)
		defer w.wg.Done()

		w.run("async", job)
	}()
}

func (w *Worker) process(workerID int) {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case job, ok := <-w.queue:
			if !ok {
				return
			}
			w.run(fmt.Sprintf("worker %d", workerID), job)
		}
	}
}

// ScheduleEvery runs a named job at a fixed interval. The first run happens
// after one interval, not at startup.
func (w *Worker) ScheduleEvery(name string, interval time.Duration, job Job) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				w.run(name, job)
			}
		}
	}()
}

func (w *Worker) run(name string, job Job) {
	w.trackStart()
	defer w.trackEnd()
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Sprintf("[Worker] %s panicked: %v", name, r))
			w.trackFailure()
		}
	}()

	start := time.Now()
	if err := job(w.ctx); err != nil {
		logger.Error(fmt.Sprintf("[Worker] %s failed: %v", name, err))
		w.trackFailure()
		return
	}
	logger.Debug(fmt.Sprintf("[Worker] %s completed in %v", name, time.Since(start)))
}

// Shutdown stops accepting work and waits for in-flight jobs to finish.
func (w *Worker) Shutdown() {
	w.cancel()
	close(w.queue)
	w.wg.Wait()
}

// GetStats returns the current worker statistics.
func (w *Worker) GetStats() WorkerStats {
	w.statsMu.RLock()
	defer w.statsMu.RUnlock()
	stats := w.stats
	stats.QueueLength = len(w.queue)
	stats.MaxAsync = cap(w.asyncSem)
	return stats
}

func (w *Worker) trackStart() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs++
}

func (w *Worker) trackEnd() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs--
	w.stats.FinishedJobs++
}

func (w *Worker) trackFailure() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.FailedJobs++
}
