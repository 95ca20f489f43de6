package domain

import "time"

// Playlist 歌单实体, 归属唯一属主, 可通过协作授予他人访问
type Playlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Validate 验证歌单数据
func (p *Playlist) Validate() error {
	if p.Name == "" {
		return ErrInvalidPlaylistName
	}
	if p.OwnerID == "" {
		return ErrInvalidUserID
	}
	return nil
}

// PlaylistSummary 歌单列表项, 携带属主用户名
type PlaylistSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// PlaylistSong 歌单与歌曲的成员关系
// 约束: (playlist_id, song_id) 唯一, 同一首歌不能重复加入
type PlaylistSong struct {
	ID         string `json:"id"`
	PlaylistID string `json:"playlist_id"`
	SongID     string `json:"song_id"`
}

// PlaylistDetail 歌单详情, 含歌单内歌曲列表
type PlaylistDetail struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Username string        `json:"username"`
	Songs    []SongSummary `json:"songs"`
}
