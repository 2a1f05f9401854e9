package walker

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsAllSubmittedTasks(t *testing.T) {
	t.Parallel()

	p := newPool(4, nil)

	var counter atomic.Int64

	const n = 100

	var wg sync.WaitGroup

	for range n {
		wg.Add(1)

		p.submit(func() {
			defer wg.Done()

			counter.Add(1)
		})
	}

	wg.Wait()
	p.shutdown()

	assert.Equal(t, int64(n), counter.Load())
}

func TestPool_ActiveJobsIncrementsAtSubmit(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	p := newPool(1, nil)

	p.submit(func() {
		<-release
	})

	// activeJobs must already be 1 immediately after submit returns,
	// before the worker has necessarily started running the task.
	require.Equal(t, 1, p.activeJobsCount())

	close(release)

	require.Eventually(t, func() bool {
		return p.activeJobsCount() == 0
	}, time.Second, time.Millisecond)

	p.shutdown()
}

func TestPool_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	p := newPool(2, nil)

	var ran atomic.Bool

	var wg sync.WaitGroup

	wg.Add(1)
	p.submit(func() {
		defer wg.Done()

		panic("boom")
	})
	wg.Wait()

	wg.Add(1)
	p.submit(func() {
		defer wg.Done()

		ran.Store(true)
	})
	wg.Wait()

	require.Eventually(t, func() bool {
		return p.activeJobsCount() == 0
	}, time.Second, time.Millisecond)

	assert.True(t, ran.Load())
	p.shutdown()
}

func TestPool_OnChangeCalledOnSubmitAndComplete(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	p := newPool(1, func() { calls.Add(1) })

	var wg sync.WaitGroup
	wg.Add(1)
	p.submit(func() { wg.Done() })
	wg.Wait()

	require.Eventually(t, func() bool {
		return calls.Load() >= 2 // once at submit, once at completion
	}, time.Second, time.Millisecond)

	p.shutdown()
}
