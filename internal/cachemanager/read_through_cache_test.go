package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeManager records cache traffic so tests can assert the read-through
// behavior without a real backing store.
type fakeManager[K comparable, V any] struct {
	values      map[K]V
	sets        int
	gets        int
	refreshGets int
}

func newFakeManager[K comparable, V any]() *fakeManager[K, V] {
	return &fakeManager[K, V]{values: make(map[K]V)}
}

func (f *fakeManager[K, V]) Get(ctx context.Context, key K) (V, bool) {
	f.gets++
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeManager[K, V]) GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool) {
	f.refreshGets++
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeManager[K, V]) Set(ctx context.Context, key K, value V, ttl time.Duration) {
	f.sets++
	f.values[key] = value
}

func (f *fakeManager[K, V]) Delete(ctx context.Context, keys ...K) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeManager[K, V]) Flush(ctx context.Context) error {
	f.values = make(map[K]V)
	return nil
}

func TestReadThroughCache_MissComputesAndStores(t *testing.T) {
	manager := newFakeManager[string, string]()
	calls := 0
	cache := NewReadThroughCache(manager, func(ctx context.Context, input string) (string, error) {
		calls++
		return "tokens:" + input, nil
	}, false)

	got, err := cache.Get(context.Background(), "key", "def foo", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "tokens:def foo", got)
	require.Equal(t, 1, calls)
	require.Equal(t, 1, manager.sets)
}

func TestReadThroughCache_HitSkipsCompute(t *testing.T) {
	manager := newFakeManager[string, string]()
	manager.values["key"] = "cached"
	calls := 0
	cache := NewReadThroughCache(manager, func(ctx context.Context, input string) (string, error) {
		calls++
		return "computed", nil
	}, false)

	got, err := cache.Get(context.Background(), "key", "ignored", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "cached", got)
	require.Zero(t, calls)
	require.Zero(t, manager.sets)
}

func TestReadThroughCache_ComputeErrorNotStored(t *testing.T) {
	manager := newFakeManager[string, string]()
	wantErr := errors.New("parse failed")
	cache := NewReadThroughCache(manager, func(ctx context.Context, input string) (string, error) {
		return "", wantErr
	}, false)

	_, err := cache.Get(context.Background(), "key", "input", time.Minute)
	require.ErrorIs(t, err, wantErr)
	require.Zero(t, manager.sets)
}

func TestReadThroughCache_SkipCacheAlwaysComputes(t *testing.T) {
	manager := newFakeManager[string, string]()
	calls := 0
	cache := NewReadThroughCache(manager, func(ctx context.Context, input string) (string, error) {
		calls++
		return "computed", nil
	}, true)

	for i := 0; i < 3; i++ {
		got, err := cache.Get(context.Background(), "key", "input", time.Minute)
		require.NoError(t, err)
		require.Equal(t, "computed", got)
	}

	require.Equal(t, 3, calls)
	require.Zero(t, manager.gets)
	require.Zero(t, manager.sets)
}

func TestReadThroughCache_GetWithRefreshUsesRefreshPath(t *testing.T) {
	manager := newFakeManager[string, string]()
	manager.values["key"] = "cached"
	cache := NewReadThroughCache(manager, func(ctx context.Context, input string) (string, error) {
		return "computed", nil
	}, false)

	got, err := cache.GetWithRefresh(context.Background(), "key", "input", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "cached", got)
	require.Equal(t, 1, manager.refreshGets)
	require.Zero(t, manager.gets)
}

func TestReadThroughCache_GetWithRefreshMissComputes(t *testing.T) {
	manager := newFakeManager[string, string]()
	calls := 0
	cache := NewReadThroughCache(manager, func(ctx context.Context, input string) (string, error) {
		calls++
		return "computed", nil
	}, false)

	got, err := cache.GetWithRefresh(context.Background(), "key", "input", time.Minute)
	require.NoError(t, err)
	require.Equal(t, "computed", got)
	require.Equal(t, 1, calls)
	require.Equal(t, 1, manager.sets)
}
