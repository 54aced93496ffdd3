package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers returns the background workers of the interactive
// client.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers) *Workers {
	return &Workers{workers: []Worker{
		&statusRefreshWorker{job: services.StatusRefreshJob, interval: cfg.StatusRefreshInterval},
	}}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// statusRefreshWorker keeps the cached check-in status fresh.
type statusRefreshWorker struct {
	job      service.StatusRefreshJob
	interval time.Duration
}

func (s *statusRefreshWorker) Run(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *statusRefreshWorker) Stop() {
	s.job.Stop()
}
