package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"seoagent-go/pkg/logger"
)

// Job is one unit of fan-out work. Jobs capture their own results; the
// runner only tracks success and failure.
type Job struct {
	ID string
	Fn func(ctx context.Context) error
}

// BatchStats summarizes one Run call.
type BatchStats struct {
	Total     int           `json:"total"`
	Completed uint64        `json:"completed"`
	Failed    uint64        `json:"failed"`
	Batches   int           `json:"batches"`
	Duration  time.Duration `json:"duration"`
}

// SuccessRate returns the fraction of jobs that completed, in [0, 1].
func (s BatchStats) SuccessRate() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Completed) / float64(s.Total)
}

// BatchRunner executes jobs in fixed-size concurrent batches with a pacing
// delay between batches. Batch size bounds peak concurrency; the delay keeps
// external collaborators under their rate limits. A failing or panicking job
// never aborts its batch.
type BatchRunner struct {
	batchSize int
	delay     time.Duration
	log       *logger.Logger
}

// NewBatchRunner creates a runner. batchSize must be positive; delay may be
// zero to disable pacing.
func NewBatchRunner(batchSize int, delay time.Duration) *BatchRunner {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &BatchRunner{
		batchSize: batchSize,
		delay:     delay,
		log:       logger.GetLogger().WithComponent("batch_runner"),
	}
}

// Run executes all jobs and returns aggregate statistics. It stops early
// only on context cancellation, returning the stats accumulated so far
// along with the context error.
func (r *BatchRunner) Run(ctx context.Context, jobs []Job) (BatchStats, error) {
	start := time.Now()
	stats := BatchStats{Total: len(jobs)}

	for i := 0; i < len(jobs); i += r.batchSize {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}

		end := i + r.batchSize
		if end > len(jobs) {
			end = len(jobs)
		}
		batch := jobs[i:end]
		stats.Batches++

		var wg sync.WaitGroup
		for _, job := range batch {
			wg.Add(1)
			go func(job Job) {
				defer wg.Done()
				if err := r.runJob(ctx, job); err != nil {
					atomic.AddUint64(&stats.Failed, 1)
					r.log.WithError(err).WithField("job_id", job.ID).Warn("Job failed")
				} else {
					atomic.AddUint64(&stats.Completed, 1)
				}
			}(job)
		}
		wg.Wait()

		// Pace between batches, not after the last one.
		if r.delay > 0 && end < len(jobs) {
			select {
			case <-time.After(r.delay):
			case <-ctx.Done():
				stats.Duration = time.Since(start)
				return stats, ctx.Err()
			}
		}
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// runJob executes a single job, converting panics into errors so one bad
// job cannot take down the batch.
func (r *BatchRunner) runJob(ctx context.Context, job Job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("job panicked: %v", rec)
		}
	}()
	return job.Fn(ctx)
}
