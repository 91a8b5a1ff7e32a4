package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	deliverycontext "bikeshare/internal/delivery/context"

	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// Resolved is the outcome of a secondary lookup: a value or the error that replaced it.
// Callers pick their own fallback for the failed case.
type Resolved[T any] struct {
	value T
	err   error
}

// OK reports whether the lookup succeeded.
func (r Resolved[T]) OK() bool {
	return r.err == nil
}

// Value returns the looked-up value, the zero value when the lookup failed.
func (r Resolved[T]) Value() T {
	return r.value
}

// Err returns the lookup failure, if any.
func (r Resolved[T]) Err() error {
	return r.err
}

// newPassLimiter returns the cap shared by every lookup of one aggregation pass.
func newPassLimiter(limit int) *semaphore.Weighted {
	return semaphore.NewWeighted(int64(concurrencyLimit(limit)))
}

// lookup resolves ids to values for the duration of one aggregation pass. Concurrent
// requests for the same id share one remote call and every outcome, failures included,
// is remembered so that all entries of an id degrade the same way.
type lookup[T any] struct {
	name   string
	fetch   func(context.Context, int64) (T, error)
	limiter *semaphore.Weighted
	logger  *slog.Logger

	group singleflight.Group
	mu    sync.Mutex
	memo  map[int64]Resolved[T]
}

// newLookup builds a lookup whose remote calls draw from limiter. Lookups of the same pass share it.
func newLookup[T any](
	name string,
	fetch func(context.Context, int64) (T, error),
	limiter *semaphore.Weighted,
	logger *slog.Logger,
) *lookup[T] {
	return &lookup[T]{
		name:    name,
		fetch:   fetch,
		limiter: limiter,
		logger:  logger,
		memo:    make(map[int64]Resolved[T]),
	}
}

// Resolve never fails; failures are logged and carried in the result.
func (l *lookup[T]) Resolve(ctx context.Context, id int64) Resolved[T] {
	l.mu.Lock()
	if cached, ok := l.memo[id]; ok {
		l.mu.Unlock()

		return cached
	}
	l.mu.Unlock()

	shared, _, _ := l.group.Do(strconv.FormatInt(id, 10), func() (any, error) {
		// A flight for id may have completed between the memo check and Do.
		l.mu.Lock()
		cached, ok := l.memo[id]
		l.mu.Unlock()
		if ok {
			return cached, nil
		}

		value, err := l.call(ctx, id)

		result := Resolved[T]{value: value, err: err}
		if err != nil {
			var zero T
			result.value = zero

			deliverycontext.GetLoggerOrDefault(ctx, l.logger).Warn("Secondary lookup failed, using fallback",
				slog.String("lookup", l.name),
				slog.Int64("id", id),
				slog.Any("error", err),
			)
		}

		l.mu.Lock()
		l.memo[id] = result
		l.mu.Unlock()

		return result, nil
	})

	return shared.(Resolved[T])
}

// call runs one remote fetch while holding a slot of the pass limiter.
func (l *lookup[T]) call(ctx context.Context, id int64) (T, error) {
	if err := l.limiter.Acquire(ctx, 1); err != nil {
		var zero T

		return zero, errors.Wrapf(err, "%s lookup not started", l.name)
	}
	defer l.limiter.Release(1)

	return l.fetch(ctx, id)
}
