package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("spawn.count")
	b := r.Ints.Get("spawn.count")
	assert.Same(t, a, b)
	assert.Equal(t, []string{"spawn.count"}, r.Ints.Keys())
}

func TestConcurrentGetSharesPointer(t *testing.T) {
	r := NewRegistry()
	ptrs := make([]*AtomicFloat, 16)
	var wg sync.WaitGroup
	for i := range ptrs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ptrs[i] = r.Floats.Get("run.time")
		}()
	}
	wg.Wait()
	for _, p := range ptrs {
		require.Same(t, ptrs[0], p)
	}
}

func TestAtomicFloatZeroValue(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 0.0, f.Get())
	f.Set(-3.25)
	assert.Equal(t, -3.25, f.Get())
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("run.kills").Store(7)
	r.Floats.Get("run.time").Set(12.5)
	r.Bools.Get("audio.sfx").Store(true)

	snap := r.Snapshot()
	assert.Len(t, snap, 3)
	assert.Equal(t, int64(7), snap["run.kills"])
	assert.Equal(t, 12.5, snap["run.time"])
	assert.Equal(t, true, snap["audio.sfx"])
}
