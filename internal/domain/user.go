package domain

import "time"

// User 用户实体
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Fullname     string    `json:"fullname"`
	CreatedAt    time.Time `json:"-"`
}

// Validate 验证注册数据
func (u *User) Validate() error {
	if u.Username == "" || len(u.Username) > 50 {
		return ErrInvalidUsername
	}
	if u.Fullname == "" {
		return ErrInvalidFullname
	}
	return nil
}

// Authentication 持久化的刷新令牌
// 登出或刷新令牌被删除后即失效
type Authentication struct {
	Token     string
	CreatedAt time.Time
}
