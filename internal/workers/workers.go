package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/yobo-blog/internal/logger"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and waits for all of them
// to return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}

// Periodic calls a task once immediately and then every interval.
type Periodic struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context)

	logger *logger.Logger
}

func NewPeriodic(name string, interval time.Duration, task func(ctx context.Context), logger *logger.Logger) *Periodic {
	return &Periodic{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger,
	}
}

func (p *Periodic) Run(ctx context.Context) {
	p.logger.Debug().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")
	defer p.logger.Debug().Str("worker", p.name).Msg("worker stopped")

	p.task(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.task(ctx)
		}
	}
}
