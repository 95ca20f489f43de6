package service

import (
	"context"

	"github.com/diasutsman/open-music-api/internal/domain"
	"github.com/diasutsman/open-music-api/internal/repository"
)

// CollaborationService 协作服务, 管理协作者仅属主可操作
type CollaborationService struct {
	collabRepo  repository.CollaborationRepository
	userRepo    repository.UserRepository
	access      *AccessResolver
	invalidator *Invalidator
}

// NewCollaborationService 创建协作服务
func NewCollaborationService(
	collabRepo repository.CollaborationRepository,
	userRepo repository.UserRepository,
	access *AccessResolver,
	invalidator *Invalidator,
) *CollaborationService {
	return &CollaborationService{
		collabRepo:  collabRepo,
		userRepo:    userRepo,
		access:      access,
		invalidator: invalidator,
	}
}

// AddCollaboration 为歌单添加协作者
// 失效的是协作者自己的歌单列表缓存, 属主的列表不受影响
func (s *CollaborationService) AddCollaboration(ctx context.Context, playlistID, userID, actorID string) (string, error) {
	if err := s.access.VerifyOwner(ctx, playlistID, actorID); err != nil {
		return "", err
	}
	if userID == actorID {
		return "", domain.ErrCollaborateWithOwner
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return "", err
	}

	collab := &domain.Collaboration{
		ID:         domain.NewID("collab"),
		PlaylistID: playlistID,
		UserID:     userID,
	}
	if err := collab.Validate(); err != nil {
		return "", err
	}
	if err := s.collabRepo.Add(ctx, collab); err != nil {
		return "", err
	}
	s.invalidator.CollaborationChanged(ctx, userID)
	return collab.ID, nil
}

// DeleteCollaboration 移除歌单协作者
func (s *CollaborationService) DeleteCollaboration(ctx context.Context, playlistID, userID, actorID string) error {
	if err := s.access.VerifyOwner(ctx, playlistID, actorID); err != nil {
		return err
	}
	if _, err := s.collabRepo.Delete(ctx, playlistID, userID); err != nil {
		return err
	}
	s.invalidator.CollaborationChanged(ctx, userID)
	return nil
}
