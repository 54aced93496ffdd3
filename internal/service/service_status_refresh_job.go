package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-attendance/internal/logger"
)

type statusRefreshJob struct {
	checkIn CheckInService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStatusRefreshJob creates a job that calls checkIn.RefreshCheckInStatus
// on a ticker. The job is idle until Start is called.
func NewStatusRefreshJob(checkIn CheckInService) StatusRefreshJob {
	return &statusRefreshJob{checkIn: checkIn}
}

// Start implements StatusRefreshJob. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *statusRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.checkIn.RefreshCheckInStatus(jobCtx); err != nil {
					logger.FromContext(jobCtx).Debug().Err(err).Str("func", "statusRefreshJob").Msg("refresh skipped")
				}
			}
		}
	}()
}

// Stop implements StatusRefreshJob. Safe to call when the job is not running.
func (j *statusRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
