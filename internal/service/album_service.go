package service

import (
	"context"
	"time"

	"github.com/diasutsman/open-music-api/internal/domain"
	"github.com/diasutsman/open-music-api/internal/repository"
	"github.com/diasutsman/open-music-api/pkg/cache"
)

// AlbumService 专辑服务, 读走缓存, 写后精确失效
type AlbumService struct {
	albumRepo   repository.AlbumRepository
	likeRepo    repository.LikeRepository
	resolver    *cache.Resolver
	invalidator *Invalidator
}

// NewAlbumService 创建专辑服务
func NewAlbumService(albumRepo repository.AlbumRepository, likeRepo repository.LikeRepository, resolver *cache.Resolver, invalidator *Invalidator) *AlbumService {
	return &AlbumService{
		albumRepo:   albumRepo,
		likeRepo:    likeRepo,
		resolver:    resolver,
		invalidator: invalidator,
	}
}

// AddAlbum 创建专辑
func (s *AlbumService) AddAlbum(ctx context.Context, name string, year int) (string, error) {
	now := time.Now()
	album := &domain.Album{
		ID:        domain.NewID("album"),
		Name:      name,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := album.Validate(); err != nil {
		return "", err
	}
	if err := s.albumRepo.Create(ctx, album); err != nil {
		return "", err
	}
	s.invalidator.AlbumChanged(ctx, album.ID)
	return album.ID, nil
}

// GetAlbumByID 获取专辑详情（含歌曲）, 命中缓存时来源为cache
func (s *AlbumService) GetAlbumByID(ctx context.Context, id string) (*domain.AlbumDetail, cache.Source, error) {
	return cache.Lookup(ctx, s.resolver, cache.AlbumKey(id), func(ctx context.Context) (*domain.AlbumDetail, error) {
		album, err := s.albumRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		songs, err := s.albumRepo.ListSongs(ctx, id)
		if err != nil {
			return nil, err
		}
		return &domain.AlbumDetail{Album: *album, Songs: songs}, nil
	})
}

// EditAlbumByID 更新专辑
func (s *AlbumService) EditAlbumByID(ctx context.Context, id, name string, year int) error {
	album := &domain.Album{
		ID:        id,
		Name:      name,
		Year:      year,
		UpdatedAt: time.Now(),
	}
	if err := album.Validate(); err != nil {
		return err
	}
	if err := s.albumRepo.Update(ctx, album); err != nil {
		return err
	}
	s.invalidator.AlbumChanged(ctx, id)
	return nil
}

// DeleteAlbumByID 删除专辑
func (s *AlbumService) DeleteAlbumByID(ctx context.Context, id string) error {
	if err := s.albumRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidator.AlbumChanged(ctx, id)
	return nil
}

// SetAlbumCoverByID 设置专辑封面URL
func (s *AlbumService) SetAlbumCoverByID(ctx context.Context, id, coverURL string) error {
	if err := s.albumRepo.UpdateCover(ctx, id, coverURL); err != nil {
		return err
	}
	s.invalidator.AlbumChanged(ctx, id)
	return nil
}

// ToggleLike 点赞开关: 未赞则赞, 已赞则取消, 返回切换后是否点赞
func (s *AlbumService) ToggleLike(ctx context.Context, userID, albumID string) (bool, error) {
	if _, err := s.albumRepo.GetByID(ctx, albumID); err != nil {
		return false, err
	}

	liked, err := s.likeRepo.Exists(ctx, userID, albumID)
	if err != nil {
		return false, err
	}

	if liked {
		err = s.likeRepo.Remove(ctx, userID, albumID)
	} else {
		err = s.likeRepo.Add(ctx, &domain.AlbumLike{
			ID:      domain.NewID("like"),
			UserID:  userID,
			AlbumID: albumID,
		})
	}
	if err != nil {
		return false, err
	}

	s.invalidator.LikeToggled(ctx, albumID)
	return !liked, nil
}

// GetAlbumLikes 获取专辑点赞数, 命中缓存时来源为cache
func (s *AlbumService) GetAlbumLikes(ctx context.Context, albumID string) (int, cache.Source, error) {
	return cache.Lookup(ctx, s.resolver, cache.AlbumLikesKey(albumID), func(ctx context.Context) (int, error) {
		if _, err := s.albumRepo.GetByID(ctx, albumID); err != nil {
			return 0, err
		}
		return s.likeRepo.Count(ctx, albumID)
	})
}
