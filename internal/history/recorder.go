package history

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Recorder writes entries in the background. Failures are logged and
// reported through onFailure; they never reach the caller.
type Recorder struct {
	store     Store
	timeout   time.Duration
	onFailure func(error)
	wg        sync.WaitGroup
}

// NewRecorder wraps store. onFailure may be nil.
func NewRecorder(store Store, timeout time.Duration, onFailure func(error)) *Recorder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if onFailure == nil {
		onFailure = func(error) {}
	}
	return &Recorder{store: store, timeout: timeout, onFailure: onFailure}
}

// Record schedules e and returns immediately.
func (r *Recorder) Record(e Entry) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.store.Record(ctx, e); err != nil {
			slog.Warn("failed to record command history", "user_id", e.UserID, "error", err)
			r.onFailure(err)
		}
	}()
}

// Wait blocks until every scheduled write has finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}
