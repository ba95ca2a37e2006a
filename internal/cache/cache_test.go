package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spesegen/internal/core"
)

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "b should have been evicted")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Size())
}

func TestLRUCache_TTL(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewLRUCache[string](4, time.Second)
	c.now = func() time.Time { return now }

	c.Set("k", "v")
	_, ok := c.Get("k")
	require.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)

	c.Set("x", "1")
	c.Set("y", "2")
	now = now.Add(2 * time.Second)
	assert.Equal(t, 2, c.CleanExpired())
	assert.Zero(t, c.Size())
}

func TestLRUCache_Purge(t *testing.T) {
	c := NewLRUCache[int](4, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Purge()
	assert.Zero(t, c.Size())
	c.Set("a", 3)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func table(v string) core.Table {
	return core.Table{Columns: []string{"v"}, Rows: [][]any{{v}}}
}

func TestReportCache_HitAfterMiss(t *testing.T) {
	c := NewReportCache(4, time.Minute)
	var calls int
	load := func(context.Context) (core.Table, error) {
		calls++
		return table("x"), nil
	}

	_, hit, err := c.Get(context.Background(), "r", load)
	require.NoError(t, err)
	assert.False(t, hit)

	got, hit, err := c.Get(context.Background(), "r", load)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, table("x"), got)
	assert.Equal(t, 1, calls)
}

func TestReportCache_InvalidateForcesReload(t *testing.T) {
	c := NewReportCache(4, time.Minute)
	var calls int
	load := func(context.Context) (core.Table, error) {
		calls++
		return table("x"), nil
	}

	_, _, _ = c.Get(context.Background(), "r", load)
	c.Invalidate()
	_, hit, err := c.Get(context.Background(), "r", load)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, calls)
}

func TestReportCache_ErrorsNotCached(t *testing.T) {
	c := NewReportCache(4, time.Minute)
	boom := errors.New("boom")
	_, _, err := c.Get(context.Background(), "r", func(context.Context) (core.Table, error) {
		return core.Table{}, boom
	})
	require.ErrorIs(t, err, boom)

	_, hit, err := c.Get(context.Background(), "r", func(context.Context) (core.Table, error) {
		return table("ok"), nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestReportCache_StaleLoadDoesNotRepopulate(t *testing.T) {
	c := NewReportCache(4, time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _, _ = c.Get(context.Background(), "r", func(context.Context) (core.Table, error) {
			close(started)
			<-release
			return table("stale"), nil
		})
	}()

	<-started
	c.Invalidate()
	close(release)
	<-done

	got, hit, err := c.Get(context.Background(), "r", func(context.Context) (core.Table, error) {
		return table("fresh"), nil
	})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, table("fresh"), got)
}

func TestReportCache_ConcurrentMissesShareLoad(t *testing.T) {
	c := NewReportCache(4, time.Minute)
	var calls atomic.Int32
	gate := make(chan struct{})
	load := func(context.Context) (core.Table, error) {
		calls.Add(1)
		<-gate
		return table("x"), nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := c.Get(context.Background(), "r", load)
			assert.NoError(t, err)
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(8))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
	_, hit, _ := c.Get(context.Background(), "r", load)
	assert.True(t, hit)
}

func TestReportCache_Disabled(t *testing.T) {
	c := NewReportCache(0, time.Minute)
	assert.False(t, c.Enabled())
	var calls int
	load := func(context.Context) (core.Table, error) {
		calls++
		return table("x"), nil
	}
	_, _, _ = c.Get(context.Background(), "r", load)
	_, hit, _ := c.Get(context.Background(), "r", load)
	assert.False(t, hit)
	assert.Equal(t, 2, calls)
	c.Invalidate()
	assert.Zero(t, c.CleanExpired())
}

func TestManager_StopWithoutStart(t *testing.T) {
	m := NewManager()
	m.Register(NewReportCache(1, time.Minute))
	m.Stop()
	m.StartCleanup(10 * time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	m.Stop()
}
