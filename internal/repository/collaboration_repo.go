package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diasutsman/open-music-api/internal/domain"
)

// CollaborationRepositoryImpl 协作仓储实现
type CollaborationRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewCollaborationRepository 创建协作仓储
func NewCollaborationRepository(db *pgxpool.Pool) CollaborationRepository {
	return &CollaborationRepositoryImpl{db: db}
}

// Add 添加协作者, (playlist_id, user_id) 唯一
func (r *CollaborationRepositoryImpl) Add(ctx context.Context, collab *domain.Collaboration) error {
	query := `
		INSERT INTO collaborations (id, playlist_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query, collab.ID, collab.PlaylistID, collab.UserID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCollaborationExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInvariantViolation
		}
		return err
	}
	return nil
}

// Delete 移除协作者, 返回被删记录的ID
func (r *CollaborationRepositoryImpl) Delete(ctx context.Context, playlistID, userID string) (string, error) {
	query := `DELETE FROM collaborations WHERE playlist_id = $1 AND user_id = $2 RETURNING id`
	var id string
	err := r.db.QueryRow(ctx, query, playlistID, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrCollaborationNotFound
		}
		return "", err
	}
	return id, nil
}

// Verify 校验协作关系是否存在
func (r *CollaborationRepositoryImpl) Verify(ctx context.Context, playlistID, userID string) error {
	query := `SELECT id FROM collaborations WHERE playlist_id = $1 AND user_id = $2`
	var id string
	err := r.db.QueryRow(ctx, query, playlistID, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCollaborationNotFound
		}
		return err
	}
	return nil
}
