package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diasutsman/open-music-api/internal/domain"
)

// ActivityRepositoryImpl 歌单活动日志仓储实现
type ActivityRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewActivityRepository 创建活动日志仓储
func NewActivityRepository(db *pgxpool.Pool) ActivityRepository {
	return &ActivityRepositoryImpl{db: db}
}

// Add 追加一条活动记录, 写入后不再修改
func (r *ActivityRepositoryImpl) Add(ctx context.Context, activity *domain.PlaylistActivity) error {
	query := `
		INSERT INTO playlist_song_activities (id, playlist_id, song_id, user_id, action, time)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.PlaylistID,
		activity.SongID,
		activity.UserID,
		activity.Action,
		activity.Time,
	)
	return err
}

// List 按时间顺序获取歌单的活动日志, 展开用户名与歌名
func (r *ActivityRepositoryImpl) List(ctx context.Context, playlistID string) ([]domain.ActivityEntry, error) {
	query := `
		SELECT u.username, s.title, a.action, a.time
		FROM playlist_song_activities a
		JOIN users u ON u.id = a.user_id
		JOIN songs s ON s.id = a.song_id
		WHERE a.playlist_id = $1
		ORDER BY a.time
	`
	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.ActivityEntry, 0)
	for rows.Next() {
		var e domain.ActivityEntry
		if err := rows.Scan(&e.Username, &e.Title, &e.Action, &e.Time); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
