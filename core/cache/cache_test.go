package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"emote-manager/core/cache"
	"emote-manager/core/cache/mocks"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetOrSetHitDecodesCachedValue(t *testing.T) {
	raw, err := json.Marshal([]string{"a", "b"})
	assert.NoError(t, err)

	store := new(mocks.Store)
	store.On("Get", mock.Anything, "key").Return(raw, true, nil)

	filled := false
	value, err := cache.GetOrSet(context.Background(), store, "key", time.Minute,
		func(ctx context.Context) ([]string, error) {
			filled = true
			return nil, nil
		})

	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, value)
	assert.False(t, filled)
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrSetMissFillsAndStores(t *testing.T) {
	store := new(mocks.Store)
	store.On("Get", mock.Anything, "key").Return(nil, false, nil)
	store.On("Set", mock.Anything, "key", mock.Anything, 5*time.Minute).Return(nil)

	value, err := cache.GetOrSet(context.Background(), store, "key", 5*time.Minute,
		func(ctx context.Context) (string, error) {
			return "fresh", nil
		})

	assert.NoError(t, err)
	assert.Equal(t, "fresh", value)
	store.AssertExpectations(t)
}

func TestGetOrSetFillErrorIsNotCached(t *testing.T) {
	store := new(mocks.Store)
	store.On("Get", mock.Anything, "key").Return(nil, false, nil)

	_, err := cache.GetOrSet(context.Background(), store, "key", time.Minute,
		func(ctx context.Context) (string, error) {
			return "", errors.New("upstream down")
		})

	assert.EqualError(t, err, "upstream down")
	store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrSetReadErrorIsTreatedAsMiss(t *testing.T) {
	store := new(mocks.Store)
	store.On("Get", mock.Anything, "key").Return(nil, false, errors.New("redis down"))
	store.On("Set", mock.Anything, "key", mock.Anything, time.Minute).Return(nil)

	value, err := cache.GetOrSet(context.Background(), store, "key", time.Minute,
		func(ctx context.Context) (int, error) {
			return 42, nil
		})

	assert.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestGetOrSetUndecodableEntryIsRefilled(t *testing.T) {
	store := new(mocks.Store)
	store.On("Get", mock.Anything, "key").Return([]byte("{not json"), true, nil)
	store.On("Set", mock.Anything, "key", mock.Anything, time.Minute).Return(nil)

	value, err := cache.GetOrSet(context.Background(), store, "key", time.Minute,
		func(ctx context.Context) (string, error) {
			return "fresh", nil
		})

	assert.NoError(t, err)
	assert.Equal(t, "fresh", value)
	store.AssertExpectations(t)
}

// trackingStore is a mutex-guarded in-memory Store that records every write.
type trackingStore struct {
	mu   sync.Mutex
	data map[string][]byte
	sets [][]byte
}

func newTrackingStore() *trackingStore {
	return &trackingStore{data: map[string][]byte{}}
}

func (s *trackingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[key]
	return raw, ok, nil
}

func (s *trackingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	s.sets = append(s.sets, value)
	return nil
}

func TestGetOrSetConcurrentMissesBothFillLastWriteWins(t *testing.T) {
	store := newTrackingStore()

	// Both callers block inside their fill until the other has missed too,
	// forcing the double-fill window open.
	var entered sync.WaitGroup
	entered.Add(2)

	fill := func(value string) func(ctx context.Context) (string, error) {
		return func(ctx context.Context) (string, error) {
			entered.Done()
			entered.Wait()
			return value, nil
		}
	}

	var done sync.WaitGroup
	done.Add(2)
	results := make([]string, 2)
	errs := make([]error, 2)
	for i, value := range []string{"first", "second"} {
		go func(i int, value string) {
			defer done.Done()
			results[i], errs[i] = cache.GetOrSet(context.Background(), store, "key", time.Minute, fill(value))
		}(i, value)
	}
	done.Wait()

	// Both fills ran and each caller got its own fill's value.
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, "first", results[0])
	assert.Equal(t, "second", results[1])

	// Both writes landed and the later one is what stays cached.
	assert.Len(t, store.sets, 2)
	raw, ok, err := store.Get(context.Background(), "key")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, store.sets[len(store.sets)-1], raw)

	var cached string
	assert.NoError(t, json.Unmarshal(raw, &cached))
	assert.Contains(t, []string{"first", "second"}, cached)
}

func TestConfigTTLTiers(t *testing.T) {
	cfg := cache.Config{DefaultMinutes: 30, ShortMinutes: 1, LongMinutes: 60}
	assert.Equal(t, 30*time.Minute, cfg.DefaultTTL())
	assert.Equal(t, time.Minute, cfg.ShortTTL())
	assert.Equal(t, time.Hour, cfg.LongTTL())

	// Zero values fall back to the defaults.
	zero := cache.Config{}
	assert.Equal(t, 30*time.Minute, zero.DefaultTTL())
	assert.Equal(t, time.Minute, zero.ShortTTL())
	assert.Equal(t, time.Hour, zero.LongTTL())
}
