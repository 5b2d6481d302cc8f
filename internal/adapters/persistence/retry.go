package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

var (
	// opTimeout bounds every store call
	opTimeout = 5 * time.Second

	// retryBackoff is the pause before the single retry of a transient failure
	retryBackoff = 200 * time.Millisecond
)

// ConfigureRetry overrides the store retry policy. Called once at startup,
// before any repository handles traffic.
func ConfigureRetry(timeout, backoff time.Duration) {
	if timeout > 0 {
		opTimeout = timeout
	}
	if backoff > 0 {
		retryBackoff = backoff
	}
}

// execWithRetry runs a store operation under a bounded timeout with at
// most one retry. Record-not-found is a business outcome, never retried;
// a failure that survives the retry surfaces as a StoreError so callers
// can distinguish transient trouble from business rejections.
func execWithRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	attempt := func() error {
		opCtx, cancel := context.WithTimeout(ctx, opTimeout)
		defer cancel()
		return fn(opCtx)
	}

	err := attempt()
	if err == nil || !isTransient(err) {
		return err
	}

	time.Sleep(retryBackoff)
	if err = attempt(); err == nil || !isTransient(err) {
		return err
	}

	return shared.NewStoreError(op, err)
}

// isTransient reports whether the error is worth one retry
func isTransient(err error) bool {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	// Anything else from the driver (I/O, busy database, dropped
	// connection, per-op deadline) is treated as transient.
	return true
}
