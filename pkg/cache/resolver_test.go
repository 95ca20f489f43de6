package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory Store for resolver tests.
type memoryStore struct {
	mu      sync.Mutex
	data    map[string]string
	getErr  error
	setErr  error
	sets    int
	deletes []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]string)}
}

func (m *memoryStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	val, ok := m.data[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return val, nil
}

func (m *memoryStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	switch v := value.(type) {
	case []byte:
		m.data[key] = string(v)
	case string:
		m.data[key] = v
	}
	m.sets++
	return nil
}

func (m *memoryStore) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	m.deletes = append(m.deletes, keys...)
	return nil
}

type testAlbum struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
}

func TestLookup_MissThenHit(t *testing.T) {
	store := newMemoryStore()
	r := NewResolver(store, time.Minute, nil)
	ctx := context.Background()

	loads := 0
	load := func(ctx context.Context) (testAlbum, error) {
		loads++
		return testAlbum{ID: "album-1", Name: "Renaissance", Year: 2022}, nil
	}

	got, source, err := Lookup(ctx, r, AlbumKey("album-1"), load)
	require.NoError(t, err)
	assert.Equal(t, SourceOrigin, source)
	assert.Equal(t, "Renaissance", got.Name)
	assert.Equal(t, 1, loads)

	got, source, err = Lookup(ctx, r, AlbumKey("album-1"), load)
	require.NoError(t, err)
	assert.Equal(t, SourceCache, source)
	assert.Equal(t, "Renaissance", got.Name)
	assert.Equal(t, 2022, got.Year)
	assert.Equal(t, 1, loads, "second read must be served from cache")
}

func TestLookup_LoaderErrorNotCached(t *testing.T) {
	store := newMemoryStore()
	r := NewResolver(store, time.Minute, nil)
	ctx := context.Background()

	wantErr := errors.New("album not found")
	loads := 0
	load := func(ctx context.Context) (testAlbum, error) {
		loads++
		return testAlbum{}, wantErr
	}

	_, _, err := Lookup(ctx, r, AlbumKey("album-x"), load)
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 0, store.sets, "failed loads must not be cached")

	// The next request goes back to the origin and sees the same outcome.
	_, _, err = Lookup(ctx, r, AlbumKey("album-x"), load)
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 2, loads)
}

func TestLookup_CacheReadErrorFailsOpen(t *testing.T) {
	store := newMemoryStore()
	store.getErr = errors.New("connection refused")
	r := NewResolver(store, time.Minute, nil)

	got, source, err := Lookup(context.Background(), r, SongKey("song-1"), func(ctx context.Context) (string, error) {
		return "from-origin", nil
	})
	require.NoError(t, err)
	assert.Equal(t, SourceOrigin, source)
	assert.Equal(t, "from-origin", got)
}

func TestLookup_CacheWriteErrorSwallowed(t *testing.T) {
	store := newMemoryStore()
	store.setErr = errors.New("connection reset")
	r := NewResolver(store, time.Minute, nil)

	got, source, err := Lookup(context.Background(), r, SongKey("song-2"), func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, SourceOrigin, source)
	assert.Equal(t, 42, got)
}

func TestLookup_CorruptEntryTreatedAsMiss(t *testing.T) {
	store := newMemoryStore()
	store.data[AlbumKey("album-1")] = "{not json"
	r := NewResolver(store, time.Minute, nil)

	got, source, err := Lookup(context.Background(), r, AlbumKey("album-1"), func(ctx context.Context) (testAlbum, error) {
		return testAlbum{ID: "album-1", Name: "Fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, SourceOrigin, source)
	assert.Equal(t, "Fresh", got.Name)
}

func TestLookup_InvalidateForcesOriginReload(t *testing.T) {
	store := newMemoryStore()
	r := NewResolver(store, time.Minute, nil)
	ctx := context.Background()

	version := "v1"
	load := func(ctx context.Context) (string, error) {
		return version, nil
	}

	got, _, err := Lookup(ctx, r, AlbumKey("album-1"), load)
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	// Simulates an edit: the store now holds v2 and the write purges
	// the key, so the stale v1 entry can never be served again.
	version = "v2"
	require.NoError(t, r.Invalidate(ctx, AlbumKey("album-1")))

	got, source, err := Lookup(ctx, r, AlbumKey("album-1"), load)
	require.NoError(t, err)
	assert.Equal(t, SourceOrigin, source)
	assert.Equal(t, "v2", got)
}

func TestLookup_ConcurrentMissesShareOneLoad(t *testing.T) {
	store := newMemoryStore()
	r := NewResolver(store, time.Minute, nil)

	var mu sync.Mutex
	loads := 0
	release := make(chan struct{})
	load := func(ctx context.Context) (string, error) {
		mu.Lock()
		loads++
		mu.Unlock()
		<-release
		return "shared", nil
	}

	const readers = 8
	var wg sync.WaitGroup
	results := make([]string, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, _, err := Lookup(context.Background(), r, "song:song-9", load)
			assert.NoError(t, err)
			results[i] = got
		}(i)
	}

	// Let the in-flight loaders pile up before releasing.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, "shared", got)
	}
	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, loads, 2, "concurrent misses should collapse into few loads")
}
