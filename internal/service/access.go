package service

import (
	"context"
	"errors"

	"github.com/diasutsman/open-music-api/internal/domain"
	"github.com/diasutsman/open-music-api/internal/repository"
)

// AccessLevel 歌单访问级别
type AccessLevel int

const (
	AccessDenied AccessLevel = iota
	AccessOwner
	AccessCollaborator
)

// AccessResolver 歌单访问判定: 先查归属, 再查协作
type AccessResolver struct {
	playlistRepo repository.PlaylistRepository
	collabRepo   repository.CollaborationRepository
}

// NewAccessResolver 创建访问判定器
func NewAccessResolver(playlistRepo repository.PlaylistRepository, collabRepo repository.CollaborationRepository) *AccessResolver {
	return &AccessResolver{
		playlistRepo: playlistRepo,
		collabRepo:   collabRepo,
	}
}

// VerifyOwner 仅属主可通过, 删除歌单和管理协作者时使用
// 歌单不存在返回NotFound, 非属主一律Forbidden, 不走协作兜底
func (a *AccessResolver) VerifyOwner(ctx context.Context, playlistID, userID string) error {
	playlist, err := a.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerID != userID {
		return domain.ErrForbidden
	}
	return nil
}

// Resolve 判定用户对歌单的访问级别
// 歌单不存在时直接返回NotFound, 不再尝试协作兜底;
// 属主校验未通过才查协作关系, 协作查询出错时仍上报归属校验的原始错误
func (a *AccessResolver) Resolve(ctx context.Context, playlistID, userID string) (AccessLevel, error) {
	err := a.VerifyOwner(ctx, playlistID, userID)
	if err == nil {
		return AccessOwner, nil
	}
	if errors.Is(err, domain.ErrPlaylistNotFound) {
		return AccessDenied, err
	}

	if collabErr := a.collabRepo.Verify(ctx, playlistID, userID); collabErr == nil {
		return AccessCollaborator, nil
	}
	return AccessDenied, err
}
