package accrual

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	t.Run("Executes every submitted task", func(t *testing.T) {
		wp := NewWorkerPool(2)

		var executed atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			err := wp.AddTask(context.Background(), func() error {
				defer wg.Done()
				executed.Add(1)
				return nil
			})
			require.NoError(t, err)
		}
		wg.Wait()
		wp.Close()

		assert.Equal(t, int32(5), executed.Load())
	})

	t.Run("A failing task does not stop the workers", func(t *testing.T) {
		wp := NewWorkerPool(1)

		var executed atomic.Int32
		var wg sync.WaitGroup
		wg.Add(2)
		require.NoError(t, wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			return assert.AnError
		}))
		require.NoError(t, wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			executed.Add(1)
			return nil
		}))
		wg.Wait()
		wp.Close()

		assert.Equal(t, int32(1), executed.Load())
	})

	t.Run("Canceled context rejects the task", func(t *testing.T) {
		wp := NewWorkerPool(1)
		defer wp.Close()

		// saturate the queue so AddTask has to wait on ctx
		block := make(chan struct{})
		require.NoError(t, wp.AddTask(context.Background(), func() error {
			<-block
			return nil
		}))
		require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := wp.AddTask(ctx, func() error {
			t.Error("task must not run")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		close(block)
	})

	t.Run("Close is idempotent", func(t *testing.T) {
		wp := NewWorkerPool(1)
		wp.Close()
		wp.Close()
	})
}
