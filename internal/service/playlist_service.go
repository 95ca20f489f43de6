package service

import (
	"context"
	"time"

	"github.com/diasutsman/open-music-api/internal/domain"
	"github.com/diasutsman/open-music-api/internal/repository"
	"github.com/diasutsman/open-music-api/pkg/cache"
	"github.com/diasutsman/open-music-api/pkg/logger"
)

// PlaylistService 歌单服务
// 所有歌单级操作先过访问判定, 写成功后再做缓存失效
type PlaylistService struct {
	playlistRepo     repository.PlaylistRepository
	playlistSongRepo repository.PlaylistSongRepository
	songRepo         repository.SongRepository
	activityRepo     repository.ActivityRepository
	access           *AccessResolver
	resolver         *cache.Resolver
	invalidator      *Invalidator
	log              logger.Logger
}

// NewPlaylistService 创建歌单服务
func NewPlaylistService(
	playlistRepo repository.PlaylistRepository,
	playlistSongRepo repository.PlaylistSongRepository,
	songRepo repository.SongRepository,
	activityRepo repository.ActivityRepository,
	access *AccessResolver,
	resolver *cache.Resolver,
	invalidator *Invalidator,
	log logger.Logger,
) *PlaylistService {
	return &PlaylistService{
		playlistRepo:     playlistRepo,
		playlistSongRepo: playlistSongRepo,
		songRepo:         songRepo,
		activityRepo:     activityRepo,
		access:           access,
		resolver:         resolver,
		invalidator:      invalidator,
		log:              log,
	}
}

// AddPlaylist 创建歌单
func (s *PlaylistService) AddPlaylist(ctx context.Context, name, ownerID string) (string, error) {
	playlist := &domain.Playlist{
		ID:        domain.NewID("playlist"),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}
	if err := playlist.Validate(); err != nil {
		return "", err
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return "", err
	}
	s.invalidator.PlaylistAdded(ctx, ownerID)
	return playlist.ID, nil
}

// GetPlaylists 获取用户可见的歌单列表, 命中缓存时来源为cache
func (s *PlaylistService) GetPlaylists(ctx context.Context, userID string) ([]domain.PlaylistSummary, cache.Source, error) {
	return cache.Lookup(ctx, s.resolver, cache.PlaylistsKey(userID), func(ctx context.Context) ([]domain.PlaylistSummary, error) {
		return s.playlistRepo.ListAccessible(ctx, userID)
	})
}

// DeletePlaylist 删除歌单, 仅属主可操作
// 成员/协作/活动日志由存储层级联删除, 这里清掉以歌单ID为键的全部缓存
func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID, userID string) error {
	if err := s.access.VerifyOwner(ctx, playlistID, userID); err != nil {
		return err
	}
	if err := s.playlistRepo.Delete(ctx, playlistID); err != nil {
		return err
	}
	s.invalidator.PlaylistDeleted(ctx, userID, playlistID)
	return nil
}

// AddSongToPlaylist 向歌单添加歌曲, 属主或协作者可操作
func (s *PlaylistService) AddSongToPlaylist(ctx context.Context, playlistID, songID, userID string) error {
	if _, err := s.access.Resolve(ctx, playlistID, userID); err != nil {
		return err
	}
	if _, err := s.songRepo.GetByID(ctx, songID); err != nil {
		return err
	}

	ps := &domain.PlaylistSong{
		ID:         domain.NewID("playlist_song"),
		PlaylistID: playlistID,
		SongID:     songID,
	}
	if err := s.playlistSongRepo.Add(ctx, ps); err != nil {
		return err
	}
	s.invalidator.MembershipChanged(ctx, playlistID)

	s.recordActivity(ctx, playlistID, songID, userID, domain.ActionAdd)
	return nil
}

// GetPlaylistSongs 获取歌单详情（含歌曲）, 属主或协作者可见
func (s *PlaylistService) GetPlaylistSongs(ctx context.Context, playlistID, userID string) (*domain.PlaylistDetail, cache.Source, error) {
	if _, err := s.access.Resolve(ctx, playlistID, userID); err != nil {
		return nil, cache.SourceOrigin, err
	}
	return cache.Lookup(ctx, s.resolver, cache.PlaylistSongsKey(playlistID), func(ctx context.Context) (*domain.PlaylistDetail, error) {
		detail, err := s.playlistRepo.GetDetail(ctx, playlistID)
		if err != nil {
			return nil, err
		}
		songs, err := s.playlistSongRepo.ListSongs(ctx, playlistID)
		if err != nil {
			return nil, err
		}
		detail.Songs = songs
		return detail, nil
	})
}

// RemoveSongFromPlaylist 从歌单移除歌曲, 属主或协作者可操作
func (s *PlaylistService) RemoveSongFromPlaylist(ctx context.Context, playlistID, songID, userID string) error {
	if _, err := s.access.Resolve(ctx, playlistID, userID); err != nil {
		return err
	}
	if err := s.playlistSongRepo.Remove(ctx, playlistID, songID); err != nil {
		return err
	}
	s.invalidator.MembershipChanged(ctx, playlistID)

	s.recordActivity(ctx, playlistID, songID, userID, domain.ActionDelete)
	return nil
}

// GetPlaylistActivities 获取歌单活动日志, 属主或协作者可见
func (s *PlaylistService) GetPlaylistActivities(ctx context.Context, playlistID, userID string) ([]domain.ActivityEntry, cache.Source, error) {
	if _, err := s.access.Resolve(ctx, playlistID, userID); err != nil {
		return nil, cache.SourceOrigin, err
	}
	return cache.Lookup(ctx, s.resolver, cache.PlaylistActivitiesKey(playlistID), func(ctx context.Context) ([]domain.ActivityEntry, error) {
		return s.activityRepo.List(ctx, playlistID)
	})
}

// recordActivity 追加活动日志并失效日志缓存
// 日志写失败不回滚成员变更, 只影响活动记录的完整性
func (s *PlaylistService) recordActivity(ctx context.Context, playlistID, songID, userID, action string) {
	activity := &domain.PlaylistActivity{
		ID:         domain.NewID("playlist_activity"),
		PlaylistID: playlistID,
		SongID:     songID,
		UserID:     userID,
		Action:     action,
		Time:       time.Now(),
	}
	if err := s.activityRepo.Add(ctx, activity); err != nil {
		s.log.Warn("failed to record playlist activity",
			logger.String("playlist_id", playlistID),
			logger.Error(err),
		)
		return
	}
	s.invalidator.ActivityRecorded(ctx, playlistID)
}
