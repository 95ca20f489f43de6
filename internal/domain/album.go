package domain

import "time"

// Album 专辑实体
type Album struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Year      int       `json:"year"`
	CoverURL  *string   `json:"coverUrl"` // 封面URL, 未上传时为null
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Validate 验证专辑数据
func (a *Album) Validate() error {
	if a.Name == "" {
		return ErrInvalidAlbumName
	}
	if a.Year < 1900 || a.Year > time.Now().Year()+1 {
		return ErrInvalidAlbumYear
	}
	return nil
}

// AlbumDetail 专辑详情, 含专辑内歌曲列表
type AlbumDetail struct {
	Album
	Songs []Song `json:"songs"`
}

// AlbumLike 用户点赞专辑的关联记录
// 约束: (user_id, album_id) 唯一, 点赞按开关语义切换
type AlbumLike struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	AlbumID string `json:"album_id"`
}
