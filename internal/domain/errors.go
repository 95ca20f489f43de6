package domain

import "errors"

var (
	// 通用错误
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidUserID = errors.New("invalid user id")

	// 专辑相关错误
	ErrAlbumNotFound    = errors.New("album not found")
	ErrInvalidAlbumName = errors.New("invalid album name")
	ErrInvalidAlbumYear = errors.New("invalid album year")

	// 歌曲相关错误
	ErrSongNotFound         = errors.New("song not found")
	ErrInvalidSongTitle     = errors.New("invalid song title")
	ErrInvalidSongYear      = errors.New("invalid song year")
	ErrInvalidSongGenre     = errors.New("invalid song genre")
	ErrInvalidSongPerformer = errors.New("invalid song performer")

	// 用户相关错误
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidFullname    = errors.New("invalid fullname")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// 歌单相关错误
	ErrPlaylistNotFound    = errors.New("playlist not found")
	ErrInvalidPlaylistName = errors.New("invalid playlist name")
	ErrSongAlreadyInPlaylist = errors.New("song already in playlist")
	ErrSongNotInPlaylist     = errors.New("song not in playlist")

	// 协作相关错误
	ErrCollaborationNotFound = errors.New("collaboration not found")
	ErrCollaborationExists   = errors.New("collaboration already exists")
	ErrCollaborateWithOwner  = errors.New("cannot collaborate with playlist owner")

	// 令牌相关错误
	ErrRefreshTokenNotFound = errors.New("refresh token not found")

	// 权限相关错误
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// 数据一致性错误: 写操作影响的行数与预期不符
	ErrInvariantViolation = errors.New("write affected unexpected row count")
)
