package service

import (
	"context"
	"time"

	"github.com/diasutsman/open-music-api/internal/domain"
	"github.com/diasutsman/open-music-api/internal/repository"
	"github.com/diasutsman/open-music-api/pkg/cache"
)

// SongService 歌曲服务
type SongService struct {
	songRepo    repository.SongRepository
	resolver    *cache.Resolver
	invalidator *Invalidator
}

// NewSongService 创建歌曲服务
func NewSongService(songRepo repository.SongRepository, resolver *cache.Resolver, invalidator *Invalidator) *SongService {
	return &SongService{
		songRepo:    songRepo,
		resolver:    resolver,
		invalidator: invalidator,
	}
}

// AddSong 创建歌曲
func (s *SongService) AddSong(ctx context.Context, song *domain.Song) (string, error) {
	now := time.Now()
	song.ID = domain.NewID("song")
	song.CreatedAt = now
	song.UpdatedAt = now

	if err := song.Validate(); err != nil {
		return "", err
	}
	if err := s.songRepo.Create(ctx, song); err != nil {
		return "", err
	}
	s.invalidator.SongChanged(ctx, song.ID)
	return song.ID, nil
}

// GetSongs 按条件查询歌曲列表, 列表不走缓存
func (s *SongService) GetSongs(ctx context.Context, filter domain.SongFilter) ([]domain.SongSummary, error) {
	return s.songRepo.List(ctx, filter)
}

// GetSongByID 获取歌曲详情, 命中缓存时来源为cache
func (s *SongService) GetSongByID(ctx context.Context, id string) (*domain.Song, cache.Source, error) {
	return cache.Lookup(ctx, s.resolver, cache.SongKey(id), func(ctx context.Context) (*domain.Song, error) {
		return s.songRepo.GetByID(ctx, id)
	})
}

// EditSongByID 更新歌曲
func (s *SongService) EditSongByID(ctx context.Context, id string, song *domain.Song) error {
	song.ID = id
	song.UpdatedAt = time.Now()

	if err := song.Validate(); err != nil {
		return err
	}
	if err := s.songRepo.Update(ctx, song); err != nil {
		return err
	}
	s.invalidator.SongChanged(ctx, id)
	return nil
}

// DeleteSongByID 删除歌曲
func (s *SongService) DeleteSongByID(ctx context.Context, id string) error {
	if err := s.songRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidator.SongChanged(ctx, id)
	return nil
}
