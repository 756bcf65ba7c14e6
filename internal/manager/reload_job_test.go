package manager

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/region-mirror/internal/logger"
)

// fakeReloadManager считает вызовы Reload; остальные методы не нужны.
type fakeReloadManager struct {
	Manager

	mu    sync.Mutex
	count int
}

func (f *fakeReloadManager) Reload(_ context.Context) (*List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
	return nil, nil
}

func (f *fakeReloadManager) reloads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

func TestReloadJob_ReloadsPeriodically(t *testing.T) {
	fake := &fakeReloadManager{}
	job := NewReloadJob(fake, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return fake.reloads() >= 3
	}, 2*time.Second, 5*time.Millisecond)
}

func TestReloadJob_StopHaltsReloads(t *testing.T) {
	fake := &fakeReloadManager{}
	job := NewReloadJob(fake, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		return fake.reloads() >= 1
	}, 2*time.Second, time.Millisecond)

	job.Stop()
	after := fake.reloads()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, fake.reloads())
}

func TestReloadJob_RestartReplacesPrevious(t *testing.T) {
	fake := &fakeReloadManager{}
	job := NewReloadJob(fake, logger.Nop())

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return fake.reloads() >= 1
	}, 2*time.Second, time.Millisecond)
}

func TestReloadJob_StopWhenIdleIsNoop(t *testing.T) {
	job := NewReloadJob(&fakeReloadManager{}, logger.Nop())

	job.Stop()
	job.Stop()
}

func TestReloadJob_ContextCancelStops(t *testing.T) {
	fake := &fakeReloadManager{}
	job := NewReloadJob(fake, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 5*time.Millisecond)
	cancel()

	time.Sleep(20 * time.Millisecond)
	after := fake.reloads()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, fake.reloads())
}
