package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diasutsman/open-music-api/internal/domain"
)

// AuthRepositoryImpl 刷新令牌仓储实现
type AuthRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAuthRepository 创建刷新令牌仓储
func NewAuthRepository(db *pgxpool.Pool) AuthRepository {
	return &AuthRepositoryImpl{db: db}
}

// AddToken 保存刷新令牌
func (r *AuthRepositoryImpl) AddToken(ctx context.Context, token string) error {
	query := `INSERT INTO authentications (token, created_at) VALUES ($1, NOW())`
	_, err := r.db.Exec(ctx, query, token)
	return err
}

// VerifyToken 校验刷新令牌是否仍然有效
func (r *AuthRepositoryImpl) VerifyToken(ctx context.Context, token string) error {
	query := `SELECT token FROM authentications WHERE token = $1`
	var t string
	err := r.db.QueryRow(ctx, query, token).Scan(&t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRefreshTokenNotFound
		}
		return err
	}
	return nil
}

// DeleteToken 删除刷新令牌, 登出时使用
func (r *AuthRepositoryImpl) DeleteToken(ctx context.Context, token string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM authentications WHERE token = $1`, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRefreshTokenNotFound
	}
	return nil
}

// DeleteExpired 清理超过保留期的刷新令牌, 定时任务调用
func (r *AuthRepositoryImpl) DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	tag, err := r.db.Exec(ctx, `DELETE FROM authentications WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
