package database

import (
	"context"
	"time"
)

// detach returns a context that keeps ctx's values but not its cancellation, bounded by
// timeout when it is positive. The returned cancel must always be called.
func detach(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	if timeout > 0 {
		return context.WithTimeout(detached, timeout)
	}
	return detached, func() {}
}
