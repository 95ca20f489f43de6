package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diasutsman/open-music-api/internal/domain"
)

// LikeRepositoryImpl 专辑点赞仓储实现
type LikeRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewLikeRepository 创建点赞仓储
func NewLikeRepository(db *pgxpool.Pool) LikeRepository {
	return &LikeRepositoryImpl{db: db}
}

// Exists 判断用户是否已点赞该专辑
func (r *LikeRepositoryImpl) Exists(ctx context.Context, userID, albumID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_album_likes WHERE user_id = $1 AND album_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, albumID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Add 点赞, (user_id, album_id) 唯一
func (r *LikeRepositoryImpl) Add(ctx context.Context, like *domain.AlbumLike) error {
	query := `INSERT INTO user_album_likes (id, user_id, album_id) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, like.ID, like.UserID, like.AlbumID)
	return err
}

// Remove 取消点赞
func (r *LikeRepositoryImpl) Remove(ctx context.Context, userID, albumID string) error {
	query := `DELETE FROM user_album_likes WHERE user_id = $1 AND album_id = $2`
	_, err := r.db.Exec(ctx, query, userID, albumID)
	return err
}

// Count 统计专辑的点赞数
func (r *LikeRepositoryImpl) Count(ctx context.Context, albumID string) (int, error) {
	query := `SELECT COUNT(*) FROM user_album_likes WHERE album_id = $1`
	var count int
	if err := r.db.QueryRow(ctx, query, albumID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
