package manager

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/region-mirror/internal/logger"
)

type reloadJob struct {
	manager Manager
	log     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReloadJob creates a reloadJob that calls manager.Reload on a ticker.
// The job is idle until Start is called.
func NewReloadJob(m Manager, log *logger.Logger) ReloadJob {
	return &reloadJob{manager: m, log: log}
}

// Start implements ReloadJob. It stops any previously running job, then
// launches a background goroutine that reloads every interval. If interval
// is zero or negative it defaults to 5 minutes. The goroutine exits when
// ctx is cancelled or Stop is called.
func (j *reloadJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
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
				if _, err := j.manager.Reload(jobCtx); err != nil {
					j.log.Warn().Err(err).Msg("periodic reload failed")
				}
			}
		}
	}()
}

// Stop implements ReloadJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *reloadJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
