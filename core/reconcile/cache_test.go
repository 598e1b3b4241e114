package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyCache_Hit(t *testing.T) {
	var loads atomic.Int32
	cache := NewKeyCache(5*time.Minute, func(ctx context.Context, scope string) (KeySet, error) {
		loads.Add(1)
		return NewKeySet(scope + ".key"), nil
	})

	first, err := cache.Get(context.Background(), "ru-RU")
	require.NoError(t, err)
	second, err := cache.Get(context.Background(), "ru-RU")
	require.NoError(t, err)

	assert.True(t, first.Has("ru-RU.key"))
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), loads.Load())

	_, err = cache.Get(context.Background(), "de-DE")
	require.NoError(t, err)
	assert.Equal(t, int32(2), loads.Load())
}

func TestKeyCache_Expiry(t *testing.T) {
	var loads atomic.Int32
	cache := NewKeyCache(time.Minute, func(ctx context.Context, scope string) (KeySet, error) {
		loads.Add(1)
		return KeySet{}, nil
	})
	now := time.Now()
	cache.now = func() time.Time { return now }

	_, _ = cache.Get(context.Background(), "x")
	now = now.Add(2 * time.Minute)
	_, _ = cache.Get(context.Background(), "x")

	assert.Equal(t, int32(2), loads.Load())
}

func TestKeyCache_ZeroTTLDisablesCaching(t *testing.T) {
	var loads atomic.Int32
	cache := NewKeyCache(0, func(ctx context.Context, scope string) (KeySet, error) {
		loads.Add(1)
		return nil, nil
	})

	keys, err := cache.Get(context.Background(), "x")
	require.NoError(t, err)
	assert.NotNil(t, keys)
	_, _ = cache.Get(context.Background(), "x")

	assert.Equal(t, int32(2), loads.Load())
}

func TestKeyCache_Invalidate(t *testing.T) {
	var loads atomic.Int32
	cache := NewKeyCache(time.Hour, func(ctx context.Context, scope string) (KeySet, error) {
		loads.Add(1)
		return KeySet{}, nil
	})

	_, _ = cache.Get(context.Background(), "x")
	cache.Invalidate("x")
	_, _ = cache.Get(context.Background(), "x")

	assert.Equal(t, int32(2), loads.Load())
}

func TestKeyCache_LoadError(t *testing.T) {
	cache := NewKeyCache(time.Hour, func(ctx context.Context, scope string) (KeySet, error) {
		return nil, errors.New("backend down")
	})

	_, err := cache.Get(context.Background(), "x")
	assert.EqualError(t, err, "backend down")
}

func TestKeyCache_ConcurrentGet(t *testing.T) {
	var loads atomic.Int32
	release := make(chan struct{})
	cache := NewKeyCache(time.Hour, func(ctx context.Context, scope string) (KeySet, error) {
		loads.Add(1)
		<-release
		return NewKeySet("k"), nil
	})

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			keys, err := cache.Get(context.Background(), "x")
			assert.NoError(t, err)
			assert.True(t, keys.Has("k"))
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, loads.Load(), int32(2))
}
