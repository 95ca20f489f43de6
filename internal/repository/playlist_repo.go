package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diasutsman/open-music-api/internal/domain"
)

// PlaylistRepositoryImpl 歌单仓储实现
type PlaylistRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPlaylistRepository 创建歌单仓储
func NewPlaylistRepository(db *pgxpool.Pool) PlaylistRepository {
	return &PlaylistRepositoryImpl{db: db}
}

// Create 创建歌单
func (r *PlaylistRepositoryImpl) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `
		INSERT INTO playlists (id, name, owner, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query,
		playlist.ID,
		playlist.Name,
		playlist.OwnerID,
		playlist.CreatedAt,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInvariantViolation
		}
		return err
	}
	return nil
}

// GetByID 根据ID获取歌单, 权限判定只需要属主字段
func (r *PlaylistRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	query := `SELECT id, name, owner, created_at FROM playlists WHERE id = $1`

	var playlist domain.Playlist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&playlist.ID,
		&playlist.Name,
		&playlist.OwnerID,
		&playlist.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &playlist, nil
}

// GetDetail 获取歌单详情（不含歌曲, 歌曲由成员仓储提供）
func (r *PlaylistRepositoryImpl) GetDetail(ctx context.Context, id string) (*domain.PlaylistDetail, error) {
	query := `
		SELECT p.id, p.name, u.username
		FROM playlists p
		JOIN users u ON u.id = p.owner
		WHERE p.id = $1
	`
	var detail domain.PlaylistDetail
	err := r.db.QueryRow(ctx, query, id).Scan(&detail.ID, &detail.Name, &detail.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &detail, nil
}

// ListAccessible 获取用户可见的歌单: 自己拥有的, 加上作为协作者参与的
func (r *PlaylistRepositoryImpl) ListAccessible(ctx context.Context, userID string) ([]domain.PlaylistSummary, error) {
	query := `
		SELECT p.id, p.name, u.username
		FROM playlists p
		JOIN users u ON u.id = p.owner
		LEFT JOIN collaborations c ON c.playlist_id = p.id
		WHERE p.owner = $1 OR c.user_id = $1
		GROUP BY p.id, p.name, u.username, p.created_at
		ORDER BY p.created_at
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := make([]domain.PlaylistSummary, 0)
	for rows.Next() {
		var p domain.PlaylistSummary
		if err := rows.Scan(&p.ID, &p.Name, &p.Username); err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

// Delete 删除歌单, 成员关系/协作/活动日志随外键级联删除
func (r *PlaylistRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}
