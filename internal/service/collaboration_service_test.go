package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/diasutsman/open-music-api/internal/domain"
)

type collabFixture struct {
	collabRepo   *MockCollaborationRepository
	userRepo     *MockUserRepository
	playlistRepo *MockPlaylistRepository
	store        *memStore
	svc          *CollaborationService
}

func newCollabFixture() *collabFixture {
	f := &collabFixture{
		collabRepo:   new(MockCollaborationRepository),
		userRepo:     new(MockUserRepository),
		playlistRepo: new(MockPlaylistRepository),
		store:        newMemStore(),
	}
	access := NewAccessResolver(f.playlistRepo, f.collabRepo)
	f.svc = NewCollaborationService(f.collabRepo, f.userRepo, access, newTestInvalidator(f.store))
	return f
}

func TestCollaborationService_AddInvalidatesCollaboratorListing(t *testing.T) {
	f := newCollabFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)
	f.userRepo.On("GetByID", mock.Anything, "user-b").
		Return(&domain.User{ID: "user-b", Username: "userb"}, nil)
	f.collabRepo.On("Add", mock.Anything, mock.Anything).Return(nil)

	id, err := f.svc.AddCollaboration(context.Background(), "playlist-1", "user-b", "user-a")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// 协作者的列表键失效, 属主的不动
	assert.Equal(t, []string{"playlists:user-b"}, f.store.deletedKeys())
}

func TestCollaborationService_AddRequiresOwner(t *testing.T) {
	f := newCollabFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)

	// 协作者自己也不能再添加别人, 管理协作者没有协作兜底
	_, err := f.svc.AddCollaboration(context.Background(), "playlist-1", "user-c", "user-b")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.collabRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCollaborationService_AddUnknownUser(t *testing.T) {
	f := newCollabFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)
	f.userRepo.On("GetByID", mock.Anything, "user-gone").
		Return(nil, domain.ErrUserNotFound)

	_, err := f.svc.AddCollaboration(context.Background(), "playlist-1", "user-gone", "user-a")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCollaborationService_AddOwnerAsCollaborator(t *testing.T) {
	f := newCollabFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)

	_, err := f.svc.AddCollaboration(context.Background(), "playlist-1", "user-a", "user-a")
	assert.ErrorIs(t, err, domain.ErrCollaborateWithOwner)
}

func TestCollaborationService_DeleteInvalidatesCollaboratorListing(t *testing.T) {
	f := newCollabFixture()
	f.playlistRepo.On("GetByID", mock.Anything, "playlist-1").
		Return(&domain.Playlist{ID: "playlist-1", OwnerID: "user-a"}, nil)
	f.collabRepo.On("Delete", mock.Anything, "playlist-1", "user-b").Return("collab-1", nil)

	err := f.svc.DeleteCollaboration(context.Background(), "playlist-1", "user-b", "user-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"playlists:user-b"}, f.store.deletedKeys())
}
