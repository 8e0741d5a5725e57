package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"fdrates/internal/infrastructure/feed"
)

// Refresher periodically enqueues one refresh task per feed source. The
// actual fetching happens on the asynq side, so a slow bank website never
// blocks the schedule.
type Refresher struct {
	client   *asynq.Client
	interval time.Duration

	// Control fields
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewRefresher(client *asynq.Client, interval time.Duration) *Refresher {
	return &Refresher{
		client:   client,
		interval: interval,
	}
}

func (w *Refresher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("refresher is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(runCtx).Error("refresher stopped", "error", err)
		}
	}()

	return nil
}

func (w *Refresher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning возвращает текущий статус
func (w *Refresher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

func (w *Refresher) Run(ctx context.Context) error {
	logger(ctx).Info("refresher started", "interval", w.interval.String())

	// Первый проход сразу, дальше по тикеру
	w.enqueueAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.enqueueAll(ctx)
		}
	}
}

func (w *Refresher) enqueueAll(ctx context.Context) {
	var enqueued int

	for _, src := range feed.Registry() {
		select {
		case <-ctx.Done():
			return
		default:
		}

		task, err := NewFeedRefreshTask(src)
		if err != nil {
			logger(ctx).Error("failed to build task", "source", src.Name, "error", err)
			continue
		}

		if _, err := w.client.EnqueueContext(ctx, task); err != nil {
			logger(ctx).Error("failed to enqueue task", "source", src.Name, "error", err)
			continue
		}

		enqueued++
	}

	logger(ctx).Info("refresh cycle enqueued", "sources", enqueued)
}
