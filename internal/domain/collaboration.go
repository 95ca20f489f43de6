package domain

// Collaboration 协作关系: 授予非属主用户访问某个歌单
// 约束: (playlist_id, user_id) 唯一; 歌单或用户删除时级联删除
type Collaboration struct {
	ID         string `json:"id"`
	PlaylistID string `json:"playlist_id"`
	UserID     string `json:"user_id"`
}

// Validate 验证协作数据
func (c *Collaboration) Validate() error {
	if c.PlaylistID == "" {
		return ErrInvalidID
	}
	if c.UserID == "" {
		return ErrInvalidUserID
	}
	return nil
}
