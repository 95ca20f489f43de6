package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diasutsman/open-music-api/internal/domain"
)

// AlbumRepositoryImpl 专辑仓储实现
type AlbumRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewAlbumRepository 创建专辑仓储
func NewAlbumRepository(db *pgxpool.Pool) AlbumRepository {
	return &AlbumRepositoryImpl{db: db}
}

// Create 创建专辑
func (r *AlbumRepositoryImpl) Create(ctx context.Context, album *domain.Album) error {
	query := `
		INSERT INTO albums (id, name, year, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query,
		album.ID,
		album.Name,
		album.Year,
		album.CreatedAt,
		album.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInvariantViolation
		}
		return err
	}
	return nil
}

// GetByID 根据ID获取专辑
func (r *AlbumRepositoryImpl) GetByID(ctx context.Context, id string) (*domain.Album, error) {
	query := `
		SELECT id, name, year, cover_url, created_at, updated_at
		FROM albums
		WHERE id = $1
	`
	var album domain.Album
	err := r.db.QueryRow(ctx, query, id).Scan(
		&album.ID,
		&album.Name,
		&album.Year,
		&album.CoverURL,
		&album.CreatedAt,
		&album.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, err
	}
	return &album, nil
}

// ListSongs 获取专辑内的歌曲
func (r *AlbumRepositoryImpl) ListSongs(ctx context.Context, albumID string) ([]domain.Song, error) {
	query := `
		SELECT id, title, year, genre, performer, duration, album_id
		FROM songs
		WHERE album_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query, albumID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	songs := make([]domain.Song, 0)
	for rows.Next() {
		var song domain.Song
		err := rows.Scan(
			&song.ID,
			&song.Title,
			&song.Year,
			&song.Genre,
			&song.Performer,
			&song.Duration,
			&song.AlbumID,
		)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

// Update 更新专辑
func (r *AlbumRepositoryImpl) Update(ctx context.Context, album *domain.Album) error {
	query := `
		UPDATE albums
		SET name = $2, year = $3, updated_at = $4
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, album.ID, album.Name, album.Year, album.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

// UpdateCover 更新专辑封面URL
func (r *AlbumRepositoryImpl) UpdateCover(ctx context.Context, id, coverURL string) error {
	query := `UPDATE albums SET cover_url = $2, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, coverURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

// Delete 删除专辑, 点赞记录随外键级联删除
func (r *AlbumRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}
