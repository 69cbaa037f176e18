package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/async"
)

func TestGo_Await(t *testing.T) {
	t.Parallel()

	f := async.Go(context.Background(), func(ctx context.Context) (string, error) {
		time.Sleep(10 * time.Millisecond)
		return "done", nil
	})

	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", v)

	select {
	case <-f.Done():
	default:
		t.Fatal("Done must be closed after Await returns")
	}
}

func TestGo_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := async.Go(context.Background(), func(ctx context.Context) (int, error) {
		return 0, boom
	})

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestGo_Panic(t *testing.T) {
	t.Parallel()

	f := async.Go(context.Background(), func(ctx context.Context) (int, error) {
		panic("unexpected")
	})

	_, err := f.Await(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected")
}

func TestGo_CancelledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	f := async.Go(ctx, func(ctx context.Context) (int, error) {
		called.Store(true)
		return 1, nil
	})

	_, err := f.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called.Load())
}

func TestFuture_AwaitGivesUp(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := async.Go(context.Background(), func(ctx context.Context) (int, error) {
		<-release
		return 7, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = f.Result()
	assert.ErrorIs(t, err, async.ErrNotComplete)

	close(release)
	v, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = f.Result()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	t.Run("collects results in order", func(t *testing.T) {
		t.Parallel()

		futures := []*async.Future[int]{
			async.Go(context.Background(), func(ctx context.Context) (int, error) {
				time.Sleep(20 * time.Millisecond)
				return 1, nil
			}),
			async.Go(context.Background(), func(ctx context.Context) (int, error) { return 2, nil }),
		}

		results, err := async.WaitAll(context.Background(), futures...)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, results)
	})

	t.Run("stops at first error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		results, err := async.WaitAll(context.Background(),
			async.Go(context.Background(), func(ctx context.Context) (int, error) { return 1, nil }),
			async.Go(context.Background(), func(ctx context.Context) (int, error) { return 0, boom }),
		)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []int{1, 0}, results)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		results, err := async.WaitAll[int](context.Background())
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
