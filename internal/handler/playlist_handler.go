package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/diasutsman/open-music-api/internal/service"
	"github.com/diasutsman/open-music-api/pkg/httputil"
)

// PlaylistHandler 歌单处理器
type PlaylistHandler struct {
	service *service.PlaylistService
}

// NewPlaylistHandler 创建歌单处理器
func NewPlaylistHandler(service *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

// PostPlaylist 创建歌单
func (h *PlaylistHandler) PostPlaylist(c *gin.Context) {
	userID := httputil.GetUserID(c)

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	playlistID, err := h.service.AddPlaylist(c.Request.Context(), req.Name, userID)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.CreatedResponse(c, gin.H{"playlistId": playlistID})
}

// GetPlaylists 获取当前用户可见的歌单, 响应头标注数据来源
func (h *PlaylistHandler) GetPlaylists(c *gin.Context) {
	userID := httputil.GetUserID(c)

	playlists, source, err := h.service.GetPlaylists(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SourcedResponse(c, gin.H{"playlists": playlists}, source)
}

// DeletePlaylist 删除歌单, 仅属主
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID := httputil.GetUserID(c)

	if err := h.service.DeletePlaylist(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	httputil.MessageResponse(c, "playlist deleted")
}

// PostPlaylistSong 向歌单添加歌曲
func (h *PlaylistHandler) PostPlaylistSong(c *gin.Context) {
	userID := httputil.GetUserID(c)

	var req struct {
		SongID string `json:"songId" binding:"required"`
	}
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.AddSongToPlaylist(c.Request.Context(), c.Param("id"), req.SongID, userID); err != nil {
		handleError(c, err)
		return
	}

	httputil.CreatedResponse(c, gin.H{"message": "song added to playlist"})
}

// GetPlaylistSongs 获取歌单详情（含歌曲）, 响应头标注数据来源
func (h *PlaylistHandler) GetPlaylistSongs(c *gin.Context) {
	userID := httputil.GetUserID(c)

	detail, source, err := h.service.GetPlaylistSongs(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SourcedResponse(c, gin.H{"playlist": detail}, source)
}

// DeletePlaylistSong 从歌单移除歌曲
func (h *PlaylistHandler) DeletePlaylistSong(c *gin.Context) {
	userID := httputil.GetUserID(c)

	var req struct {
		SongID string `json:"songId" binding:"required"`
	}
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.RemoveSongFromPlaylist(c.Request.Context(), c.Param("id"), req.SongID, userID); err != nil {
		handleError(c, err)
		return
	}

	httputil.MessageResponse(c, "song removed from playlist")
}

// GetPlaylistActivities 获取歌单活动日志, 响应头标注数据来源
func (h *PlaylistHandler) GetPlaylistActivities(c *gin.Context) {
	userID := httputil.GetUserID(c)

	activities, source, err := h.service.GetPlaylistActivities(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SourcedResponse(c, gin.H{
		"playlistId": c.Param("id"),
		"activities": activities,
	}, source)
}
