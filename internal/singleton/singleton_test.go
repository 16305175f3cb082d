package singleton

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type registry struct{ name string }

func TestLazy_SameInstance(t *testing.T) {
	lazy := New(func() *registry { return &registry{name: "inventory"} })

	assert.False(t, lazy.Initialized())

	first := lazy.Get()
	second := lazy.Get()

	assert.True(t, lazy.Initialized())
	assert.Same(t, first, second)
	assert.Equal(t, "inventory", first.name)
}

func TestLazy_ConcurrentFirstAccess(t *testing.T) {
	var constructed atomic.Int32
	lazy := New(func() *registry {
		constructed.Add(1)
		return &registry{}
	})

	const goroutines = 100
	results := make([]*registry, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = lazy.Get()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), constructed.Load())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}
