package memo_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamtheburd/lazy-cartesian-product/shared/memo"
)

func TestTable_LoadMiss(t *testing.T) {
	table := memo.NewTable[string, int](2)
	_, ok := table.Load("absent")
	assert.False(t, ok)
}

func TestTable_StoreThenLoad(t *testing.T) {
	table := memo.NewTable[string, int](2)
	table.Store("a", 1)
	v, ok := table.Load("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestTable_RotationKeepsRecentGenerations(t *testing.T) {
	table := memo.NewTable[string, int](2)
	table.Store("a", 1)
	table.Store("b", 2)
	table.Store("c", 3) // rotates: {a b} retired, {c} active

	for _, key := range []string{"a", "b", "c"} {
		_, ok := table.Load(key)
		assert.True(t, ok, "key %s", key)
	}

	table.Store("d", 4)
	table.Store("e", 5) // rotates again: {a b} dropped

	_, ok := table.Load("a")
	assert.False(t, ok)
	_, ok = table.Load("b")
	assert.False(t, ok)
	for _, key := range []string{"c", "d", "e"} {
		_, ok := table.Load(key)
		assert.True(t, ok, "key %s", key)
	}
}

func TestTable_OverwriteWithinGeneration(t *testing.T) {
	table := memo.NewTable[string, int](4)
	table.Store("a", 1)
	table.Store("a", 2)
	v, ok := table.Load("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTable_ConcurrentAccess(t *testing.T) {
	table := memo.NewTable[int, int](64)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				table.Store(i, i*g)
				table.Load(i)
			}
		}(g)
	}
	wg.Wait()
}

func TestNewTable_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() { memo.NewTable[string, int](0) })
}
