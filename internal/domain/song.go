package domain

import "time"

// Song 歌曲实体
type Song struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Year      int       `json:"year"`
	Genre     string    `json:"genre"`
	Performer string    `json:"performer"`
	Duration  *int      `json:"duration"`          // 时长（秒）, 可空
	AlbumID   *string   `json:"albumId,omitempty"` // 所属专辑, 可空（单曲可不挂专辑）
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Validate 验证歌曲数据
func (s *Song) Validate() error {
	if s.Title == "" {
		return ErrInvalidSongTitle
	}
	if s.Year < 1900 || s.Year > time.Now().Year()+1 {
		return ErrInvalidSongYear
	}
	if s.Genre == "" {
		return ErrInvalidSongGenre
	}
	if s.Performer == "" {
		return ErrInvalidSongPerformer
	}
	return nil
}

// SongSummary 歌曲列表项, 列表接口只返回三个字段
type SongSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Performer string `json:"performer"`
}

// Summary 转为列表项
func (s *Song) Summary() SongSummary {
	return SongSummary{ID: s.ID, Title: s.Title, Performer: s.Performer}
}

// SongFilter 歌曲列表的查询条件, 均为可选的模糊匹配
type SongFilter struct {
	Title     string
	Performer string
}
