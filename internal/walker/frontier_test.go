package walker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontier_LIFOOrder(t *testing.T) {
	t.Parallel()

	f := newFrontier()
	assert.True(t, f.isEmpty())

	f.push("/a", "")
	f.push("/a/b", "/a")
	f.push("/a/b/c", "/a/b")

	entry, ok := f.popLIFO()
	assert.True(t, ok)
	assert.Equal(t, "/a/b/c", entry.path)

	entry, ok = f.popLIFO()
	assert.True(t, ok)
	assert.Equal(t, "/a/b", entry.path)

	entry, ok = f.popLIFO()
	assert.True(t, ok)
	assert.Equal(t, "/a", entry.path)

	_, ok = f.popLIFO()
	assert.False(t, ok)
	assert.True(t, f.isEmpty())
}

func TestFrontier_ConcurrentPushPop(t *testing.T) {
	t.Parallel()

	f := newFrontier()

	const n = 500

	var wg sync.WaitGroup

	for i := range n {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			f.push("/path", "/parent")
			_ = i
		}(i)
	}

	wg.Wait()

	count := 0
	for {
		if _, ok := f.popLIFO(); !ok {
			break
		}

		count++
	}

	assert.Equal(t, n, count)
}
