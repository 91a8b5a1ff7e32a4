package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_DeduplicatesConcurrentCalls(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})

	l := newLookup("profile", func(_ context.Context, id int64) (string, error) {
		calls.Add(1)
		<-release

		return "user", nil
	}, newPassLimiter(4), discardLogger())

	var wg sync.WaitGroup
	results := make([]Resolved[string], 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = l.Resolve(context.Background(), 1)
		}()
	}
	close(release)
	wg.Wait()

	// Later callers are served either by the shared flight or by the memo.
	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.True(t, r.OK())
		assert.Equal(t, "user", r.Value())
	}
}

func TestLookup_RemembersFailures(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("profile service down")

	l := newLookup("profile", func(_ context.Context, id int64) (*struct{}, error) {
		calls.Add(1)

		return nil, boom
	}, newPassLimiter(4), discardLogger())

	first := l.Resolve(context.Background(), 3)
	second := l.Resolve(context.Background(), 3)

	assert.False(t, first.OK())
	assert.ErrorIs(t, first.Err(), boom)
	assert.Nil(t, first.Value())
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLookup_SeparatesIDs(t *testing.T) {
	l := newLookup("bike", func(_ context.Context, id int64) (int64, error) {
		return id * 2, nil
	}, newPassLimiter(4), discardLogger())

	assert.Equal(t, int64(2), l.Resolve(context.Background(), 1).Value())
	assert.Equal(t, int64(4), l.Resolve(context.Background(), 2).Value())
}

func TestLookup_SharedLimiterCapsCallsAcrossLookups(t *testing.T) {
	var gauge inFlightGauge
	limiter := newPassLimiter(1)

	profiles := newLookup("profile", func(_ context.Context, id int64) (int64, error) {
		defer gauge.enter()()
		time.Sleep(2 * time.Millisecond)

		return id, nil
	}, limiter, discardLogger())
	bikes := newLookup("bike", func(_ context.Context, id int64) (int64, error) {
		defer gauge.enter()()
		time.Sleep(2 * time.Millisecond)

		return id, nil
	}, limiter, discardLogger())

	var wg sync.WaitGroup
	for id := int64(1); id <= 4; id++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			profiles.Resolve(context.Background(), id)
		}()
		go func() {
			defer wg.Done()
			bikes.Resolve(context.Background(), id)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), gauge.peak.Load())
}

func TestLookup_CancelledContextFallsBack(t *testing.T) {
	limiter := newPassLimiter(1)
	// Hold the only slot so the lookup has to wait for it.
	require.NoError(t, limiter.Acquire(context.Background(), 1))
	defer limiter.Release(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := newLookup("profile", func(_ context.Context, id int64) (string, error) {
		t.Fatal("fetch must not run without a slot")

		return "", nil
	}, limiter, discardLogger())

	result := l.Resolve(ctx, 5)

	assert.False(t, result.OK())
	assert.ErrorIs(t, result.Err(), context.Canceled)
	assert.Empty(t, result.Value())
}
