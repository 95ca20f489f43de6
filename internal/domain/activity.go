package domain

import "time"

// 歌单活动动作
const (
	ActionAdd    = "add"
	ActionDelete = "delete"
)

// PlaylistActivity 歌单活动日志, 只追加不修改
// 仅在歌单删除时随级联一并删除
type PlaylistActivity struct {
	ID         string    `json:"id"`
	PlaylistID string    `json:"playlist_id"`
	SongID     string    `json:"song_id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	Time       time.Time `json:"time"`
}

// ActivityEntry 活动日志的展示项, 展开用户名与歌名
type ActivityEntry struct {
	Username string    `json:"username"`
	Title    string    `json:"title"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
}
