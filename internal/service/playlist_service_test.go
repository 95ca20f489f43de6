package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/diasutsman/open-music-api/internal/domain"
	"github.com/diasutsman/open-music-api/pkg/cache"
	"github.com/diasutsman/open-music-api/pkg/logger"
)

type playlistFixture struct {
	playlistRepo     *MockPlaylistRepository
	playlistSongRepo *MockPlaylistSongRepository
	songRepo         *MockSongRepository
	activityRepo     *MockActivityRepository
	collabRepo       *MockCollaborationRepository
	store            *memStore
	svc              *PlaylistService
}

func newPlaylistFixture() *playlistFixture {
	f := &playlistFixture{
		playlistRepo:     new(MockPlaylistRepository),
		playlistSongRepo: new(MockPlaylistSongRepository),
		songRepo:         new(MockSongRepository),
		activityRepo:     new(MockActivityRepository),
		collabRepo:       new(MockCollaborationRepository),
		store:            newMemStore(),
	}
	access := NewAccessResolver(f.playlistRepo, f.collabRepo)
	f.svc = NewPlaylistService(
		f.playlistRepo,
		f.playlistSongRepo,
		f.songRepo,
		f.activityRepo,
		access,
		newTestResolver(f.store),
		newTestInvalidator(f.store),
		logger.Default(),
	)
	return f
}

func TestPlaylistService_AddPlaylistInvalidatesOwnerListing(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	id, err := f.svc.AddPlaylist(context.Background(), "Road Trip", "user-a")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, []string{"playlists:user-a"}, f.store.deletedKeys())
}

func TestPlaylistService_DeletePlaylist_OwnerOnly(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)

	// 协作者也不能删歌单
	err := f.svc.DeletePlaylist(context.Background(), "playlist-1", "user-b")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.playlistRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPlaylistService_DeletePlaylistPurgesAllPlaylistKeys(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)
	f.playlistRepo.On("Delete", mock.Anything, "playlist-1").Return(nil)

	err := f.svc.DeletePlaylist(context.Background(), "playlist-1", "user-a")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"playlists:user-a",
		"playlistsongs:playlist-1",
		"playlist-activities:playlist-1",
	}, f.store.deletedKeys())
}

func TestPlaylistService_AddSong_CollaboratorAllowed(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)
	f.collabRepo.On("Verify", mock.Anything, "playlist-1", "user-b").Return(nil)
	f.songRepo.On("GetByID", mock.Anything, "song-1").
		Return(&domain.Song{ID: "song-1", Title: "Clocks"}, nil)
	f.playlistSongRepo.On("Add", mock.Anything, mock.Anything).Return(nil)
	f.activityRepo.On("Add", mock.Anything, mock.MatchedBy(func(a *domain.PlaylistActivity) bool {
		return a.PlaylistID == "playlist-1" && a.SongID == "song-1" &&
			a.UserID == "user-b" && a.Action == domain.ActionAdd
	})).Return(nil)

	err := f.svc.AddSongToPlaylist(context.Background(), "playlist-1", "song-1", "user-b")
	require.NoError(t, err)

	// 成员键和活动日志键都失效, 属主列表键不动
	assert.ElementsMatch(t, []string{
		"playlistsongs:playlist-1",
		"playlist-activities:playlist-1",
	}, f.store.deletedKeys())
	f.activityRepo.AssertExpectations(t)
}

func TestPlaylistService_AddSong_StrangerForbidden(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)
	f.collabRepo.On("Verify", mock.Anything, "playlist-1", "user-c").
		Return(domain.ErrCollaborationNotFound)

	err := f.svc.AddSongToPlaylist(context.Background(), "playlist-1", "song-1", "user-c")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.playlistSongRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPlaylistService_AddSong_SongMustExist(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)
	f.songRepo.On("GetByID", mock.Anything, "song-gone").
		Return(nil, domain.ErrSongNotFound)

	err := f.svc.AddSongToPlaylist(context.Background(), "playlist-1", "song-gone", "user-a")
	assert.ErrorIs(t, err, domain.ErrSongNotFound)
	f.playlistSongRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPlaylistService_RemoveSongRecordsDeleteActivity(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)
	f.playlistSongRepo.On("Remove", mock.Anything, "playlist-1", "song-1").Return(nil)
	f.activityRepo.On("Add", mock.Anything, mock.MatchedBy(func(a *domain.PlaylistActivity) bool {
		return a.Action == domain.ActionDelete
	})).Return(nil)

	err := f.svc.RemoveSongFromPlaylist(context.Background(), "playlist-1", "song-1", "user-a")
	require.NoError(t, err)
	f.activityRepo.AssertExpectations(t)
}

func TestPlaylistService_GetPlaylistSongs_CacheAside(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)
	f.playlistRepo.On("GetDetail", mock.Anything, "playlist-1").
		Return(&domain.PlaylistDetail{ID: "playlist-1", Name: "Road Trip", Username: "usera"}, nil).Once()
	f.playlistSongRepo.On("ListSongs", mock.Anything, "playlist-1").
		Return([]domain.SongSummary{{ID: "song-1", Title: "Clocks", Performer: "Coldplay"}}, nil).Once()

	detail, source, err := f.svc.GetPlaylistSongs(context.Background(), "playlist-1", "user-a")
	require.NoError(t, err)
	assert.Equal(t, cache.SourceOrigin, source)
	assert.Len(t, detail.Songs, 1)

	detail, source, err = f.svc.GetPlaylistSongs(context.Background(), "playlist-1", "user-a")
	require.NoError(t, err)
	assert.Equal(t, cache.SourceCache, source)
	assert.Len(t, detail.Songs, 1)
	f.playlistSongRepo.AssertExpectations(t)
}

func TestPlaylistService_GetActivities_RequiresAccess(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)
	f.collabRepo.On("Verify", mock.Anything, "playlist-1", "user-c").
		Return(domain.ErrCollaborationNotFound)

	_, _, err := f.svc.GetPlaylistActivities(context.Background(), "playlist-1", "user-c")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.activityRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestPlaylistService_GetPlaylists_CacheAside(t *testing.T) {
	f := newPlaylistFixture()
	f.playlistRepo.On("ListAccessible", mock.Anything, "user-a").
		Return([]domain.PlaylistSummary{{ID: "playlist-1", Name: "Road Trip", Username: "usera"}}, nil).Once()

	playlists, source, err := f.svc.GetPlaylists(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Equal(t, cache.SourceOrigin, source)
	assert.Len(t, playlists, 1)

	playlists, source, err = f.svc.GetPlaylists(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Equal(t, cache.SourceCache, source)
	assert.Len(t, playlists, 1)
	f.playlistRepo.AssertExpectations(t)
}
