package repository

import (
	"context"
	"time"

	"github.com/diasutsman/open-music-api/internal/domain"
)

// AlbumRepository 专辑仓储接口
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	GetByID(ctx context.Context, id string) (*domain.Album, error)
	ListSongs(ctx context.Context, albumID string) ([]domain.Song, error)
	Update(ctx context.Context, album *domain.Album) error
	UpdateCover(ctx context.Context, id, coverURL string) error
	Delete(ctx context.Context, id string) error
}

// SongRepository 歌曲仓储接口
type SongRepository interface {
	Create(ctx context.Context, song *domain.Song) error
	GetByID(ctx context.Context, id string) (*domain.Song, error)
	List(ctx context.Context, filter domain.SongFilter) ([]domain.SongSummary, error)
	Update(ctx context.Context, song *domain.Song) error
	Delete(ctx context.Context, id string) error
}

// UserRepository 用户仓储接口
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// PlaylistRepository 歌单仓储接口
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	GetByID(ctx context.Context, id string) (*domain.Playlist, error)
	GetDetail(ctx context.Context, id string) (*domain.PlaylistDetail, error)
	ListAccessible(ctx context.Context, userID string) ([]domain.PlaylistSummary, error)
	Delete(ctx context.Context, id string) error
}

// PlaylistSongRepository 歌单成员仓储接口
type PlaylistSongRepository interface {
	Add(ctx context.Context, ps *domain.PlaylistSong) error
	Remove(ctx context.Context, playlistID, songID string) error
	ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error)
}

// CollaborationRepository 协作仓储接口
type CollaborationRepository interface {
	Add(ctx context.Context, collab *domain.Collaboration) error
	Delete(ctx context.Context, playlistID, userID string) (string, error)
	Verify(ctx context.Context, playlistID, userID string) error
}

// ActivityRepository 歌单活动日志仓储接口
type ActivityRepository interface {
	Add(ctx context.Context, activity *domain.PlaylistActivity) error
	List(ctx context.Context, playlistID string) ([]domain.ActivityEntry, error)
}

// LikeRepository 专辑点赞仓储接口
type LikeRepository interface {
	Exists(ctx context.Context, userID, albumID string) (bool, error)
	Add(ctx context.Context, like *domain.AlbumLike) error
	Remove(ctx context.Context, userID, albumID string) error
	Count(ctx context.Context, albumID string) (int, error)
}

// AuthRepository 刷新令牌仓储接口
type AuthRepository interface {
	AddToken(ctx context.Context, token string) error
	VerifyToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}
