package service

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/diasutsman/open-music-api/internal/domain"
	"github.com/diasutsman/open-music-api/pkg/cache"
	"github.com/diasutsman/open-music-api/pkg/logger"
)

// memStore 内存缓存, 记录删除过的键便于断言失效行为
type memStore struct {
	mu      sync.Mutex
	data    map[string]string
	deleted []string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (m *memStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = string(value.([]byte))
	return nil
}

func (m *memStore) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
		m.deleted = append(m.deleted, key)
	}
	return nil
}

func (m *memStore) deletedKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deleted...)
}

func newTestResolver(store *memStore) *cache.Resolver {
	return cache.NewResolver(store, time.Minute, logger.Default())
}

func newTestInvalidator(store *memStore) *Invalidator {
	return NewInvalidator(newTestResolver(store), logger.Default())
}

// MockAlbumRepository 专辑仓储Mock
type MockAlbumRepository struct {
	mock.Mock
}

func (m *MockAlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	args := m.Called(ctx, album)
	return args.Error(0)
}

func (m *MockAlbumRepository) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *MockAlbumRepository) ListSongs(ctx context.Context, albumID string) ([]domain.Song, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Song), args.Error(1)
}

func (m *MockAlbumRepository) Update(ctx context.Context, album *domain.Album) error {
	args := m.Called(ctx, album)
	return args.Error(0)
}

func (m *MockAlbumRepository) UpdateCover(ctx context.Context, id, coverURL string) error {
	args := m.Called(ctx, id, coverURL)
	return args.Error(0)
}

func (m *MockAlbumRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSongRepository 歌曲仓储Mock
type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Create(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongRepository) List(ctx context.Context, filter domain.SongFilter) ([]domain.SongSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SongSummary), args.Error(1)
}

func (m *MockSongRepository) Update(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository 用户仓储Mock
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockPlaylistRepository 歌单仓储Mock
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) GetDetail(ctx context.Context, id string) (*domain.PlaylistDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaylistDetail), args.Error(1)
}

func (m *MockPlaylistRepository) ListAccessible(ctx context.Context, userID string) ([]domain.PlaylistSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaylistSummary), args.Error(1)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlaylistSongRepository 歌单成员仓储Mock
type MockPlaylistSongRepository struct {
	mock.Mock
}

func (m *MockPlaylistSongRepository) Add(ctx context.Context, ps *domain.PlaylistSong) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

func (m *MockPlaylistSongRepository) Remove(ctx context.Context, playlistID, songID string) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *MockPlaylistSongRepository) ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SongSummary), args.Error(1)
}

// MockCollaborationRepository 协作仓储Mock
type MockCollaborationRepository struct {
	mock.Mock
}

func (m *MockCollaborationRepository) Add(ctx context.Context, collab *domain.Collaboration) error {
	args := m.Called(ctx, collab)
	return args.Error(0)
}

func (m *MockCollaborationRepository) Delete(ctx context.Context, playlistID, userID string) (string, error) {
	args := m.Called(ctx, playlistID, userID)
	return args.String(0), args.Error(1)
}

func (m *MockCollaborationRepository) Verify(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

// MockActivityRepository 活动日志仓储Mock
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Add(ctx context.Context, activity *domain.PlaylistActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) List(ctx context.Context, playlistID string) ([]domain.ActivityEntry, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityEntry), args.Error(1)
}

// MockLikeRepository 点赞仓储Mock
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID, albumID string) (bool, error) {
	args := m.Called(ctx, userID, albumID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Add(ctx context.Context, like *domain.AlbumLike) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) Remove(ctx context.Context, userID, albumID string) error {
	args := m.Called(ctx, userID, albumID)
	return args.Error(0)
}

func (m *MockLikeRepository) Count(ctx context.Context, albumID string) (int, error) {
	args := m.Called(ctx, albumID)
	return args.Int(0), args.Error(1)
}

// MockAuthRepository 刷新令牌仓储Mock
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) AddToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthRepository) VerifyToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthRepository) DeleteToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthRepository) DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}
