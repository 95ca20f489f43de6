package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diasutsman/open-music-api/internal/domain"
)

// SongRepositoryImpl 歌曲仓储实现
type SongRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewSongRepository 创建歌曲仓储
func NewSongRepository(db *pgxpool.Pool) SongRepository {
	return &SongRepositoryImpl{db: db}
}

// Create 创建歌曲
func (r *SongRepositoryImpl) Create(ctx context.Context, song *domain.Song) error {
	query := `
		INSERT INTO songs (id, title, year, genre, performer, duration, album_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query,
		song.ID,
		song.Title,
		song.Year,
		song.Genre,
		song.Performer,
		song.Duration,
		song.AlbumID,
		song.CreatedAt,
		song.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInvariantViolation
		}
		return err
	}
	return nil
}

// GetByID 根据ID获取歌曲
func (r *SongRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Song, error) {
	query := `
		SELECT id, title, year, genre, performer, duration, album_id
		FROM songs
		WHERE id = $1
	`
	var song domain.Song
	err := r.db.QueryRow(ctx, query, id).Scan(
		&song.ID,
		&song.Title,
		&song.Year,
		&song.Genre,
		&song.Performer,
		&song.Duration,
		&song.AlbumID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSongNotFound
		}
		return nil, err
	}
	return &song, nil
}

// List 按条件查询歌曲列表, 条件均为可选的模糊匹配
func (r *SongRepositoryImpl) List(ctx context.Context, filter domain.SongFilter) ([]domain.SongSummary, error) {
	query := `SELECT id, title, performer FROM songs WHERE 1=1`
	args := []interface{}{}

	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		query += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}
	if filter.Performer != "" {
		args = append(args, "%"+filter.Performer+"%")
		query += fmt.Sprintf(" AND performer ILIKE $%d", len(args))
	}
	query += " ORDER BY created_at"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := make([]domain.SongSummary, 0)
	for rows.Next() {
		var song domain.SongSummary
		if err := rows.Scan(&song.ID, &song.Title, &song.Performer); err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

// Update 更新歌曲
func (r *SongRepositoryImpl) Update(ctx context.Context, song *domain.Song) error {
	query := `
		UPDATE songs
		SET title = $2, year = $3, genre = $4, performer = $5, duration = $6, album_id = $7, updated_at = $8
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		song.ID,
		song.Title,
		song.Year,
		song.Genre,
		song.Performer,
		song.Duration,
		song.AlbumID,
		song.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}

// Delete 删除歌曲, 歌单成员关系随外键级联删除
func (r *SongRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotFound
	}
	return nil
}
