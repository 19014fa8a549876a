package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricMapGetCreatesOnce(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	a := m.Get("engine.ticks")
	b := m.Get("engine.ticks")
	assert.Same(t, a, b)
	assert.Equal(t, 1, m.Count())
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("sim.revisits").Store(2)
	m.Get("engine.ticks").Store(5)
	m.Get("sim.cells").Store(3)

	var keys []string
	m.Range(func(key string, ptr *atomic.Int64) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{"engine.ticks", "sim.cells", "sim.revisits"}, keys)
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("engine.ticks").Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1600), m.Get("engine.ticks").Load())
}
