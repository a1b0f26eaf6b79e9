package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIDUnique(t *testing.T) {
	gen := NewSnowflakeIDGenerator(1)

	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NextID()
		assert.Positive(t, id)
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}

func TestNextIDConcurrent(t *testing.T) {
	gen := NewSnowflakeIDGenerator(2)

	const workers = 10
	const perWorker = 100

	var mu sync.Mutex
	seen := make(map[int64]bool)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := gen.NextID()
				mu.Lock()
				assert.False(t, seen[id], "duplicate id %d", id)
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestInvalidMachineIDFallsBack(t *testing.T) {
	gen := NewSnowflakeIDGenerator(1000)
	assert.Positive(t, gen.NextID())
}
