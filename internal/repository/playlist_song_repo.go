package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/diasutsman/open-music-api/internal/domain"
)

// PlaylistSongRepositoryImpl 歌单成员仓储实现
type PlaylistSongRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewPlaylistSongRepository 创建歌单成员仓储
func NewPlaylistSongRepository(db *pgxpool.Pool) PlaylistSongRepository {
	return &PlaylistSongRepositoryImpl{db: db}
}

// Add 向歌单添加歌曲, (playlist_id, song_id) 唯一
func (r *PlaylistSongRepositoryImpl) Add(ctx context.Context, ps *domain.PlaylistSong) error {
	query := `
		INSERT INTO playlist_songs (id, playlist_id, song_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(ctx, query, ps.ID, ps.PlaylistID, ps.SongID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSongAlreadyInPlaylist
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrInvariantViolation
		}
		return err
	}
	return nil
}

// Remove 从歌单移除歌曲
func (r *PlaylistSongRepositoryImpl) Remove(ctx context.Context, playlistID, songID string) error {
	query := `DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`
	tag, err := r.db.Exec(ctx, query, playlistID, songID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSongNotInPlaylist
	}
	return nil
}

// ListSongs 获取歌单内的歌曲列表
func (r *PlaylistSongRepositoryImpl) ListSongs(ctx context.Context, playlistID string) ([]domain.SongSummary, error) {
	query := `
		SELECT s.id, s.title, s.performer
		FROM playlist_songs ps
		JOIN songs s ON s.id = ps.song_id
		WHERE ps.playlist_id = $1
		ORDER BY s.created_at
	`
	rows, err := r.db.Query(ctx, query, playlistID)
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
