package adapter

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"edu-perfil/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemoryCache(nil)
	ctx := context.Background()

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, c.Delete(ctx, "k"))
	require.NoError(t, c.Delete(ctx, "k"))
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, c.Ping(ctx))
}

func TestMemoryCache_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(clock.Now)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	clock.Advance(59 * time.Second)
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	clock.Advance(time.Second)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.Equal(t, 0, c.size())
}

func TestMemoryCache_SetSweepsExpiredEntries(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(clock.Now)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "EST1", "a", time.Minute))
	require.NoError(t, c.Set(ctx, "EST2", "b", time.Minute))
	require.NoError(t, c.Set(ctx, "forever", "c", 0))
	assert.Equal(t, 3, c.size())

	clock.Advance(2 * time.Minute)
	require.NoError(t, c.Set(ctx, "EST3", "d", time.Minute))
	assert.Equal(t, 2, c.size())

	v, err := c.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestMemoryCache_Concurrent(t *testing.T) {
	c := NewMemoryCache(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%5)
			_ = c.Set(ctx, key, "v", time.Minute)
			_, _ = c.Get(ctx, key)
			_ = c.Delete(ctx, key)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.size(), 5)
}
