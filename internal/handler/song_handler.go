package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/diasutsman/open-music-api/internal/domain"
	"github.com/diasutsman/open-music-api/internal/service"
	"github.com/diasutsman/open-music-api/pkg/httputil"
)

// SongHandler 歌曲处理器
type SongHandler struct {
	service *service.SongService
}

// NewSongHandler 创建歌曲处理器
func NewSongHandler(service *service.SongService) *SongHandler {
	return &SongHandler{service: service}
}

type songRequest struct {
	Title     string  `json:"title" binding:"required"`
	Year      int     `json:"year" binding:"required"`
	Genre     string  `json:"genre" binding:"required"`
	Performer string  `json:"performer" binding:"required"`
	Duration  *int    `json:"duration"`
	AlbumID   *string `json:"albumId"`
}

func (r *songRequest) toDomain() *domain.Song {
	return &domain.Song{
		Title:     r.Title,
		Year:      r.Year,
		Genre:     r.Genre,
		Performer: r.Performer,
		Duration:  r.Duration,
		AlbumID:   r.AlbumID,
	}
}

// PostSong 创建歌曲
func (h *SongHandler) PostSong(c *gin.Context) {
	var req songRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	songID, err := h.service.AddSong(c.Request.Context(), req.toDomain())
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.CreatedResponse(c, gin.H{"songId": songID})
}

// GetSongs 按条件查询歌曲列表
func (h *SongHandler) GetSongs(c *gin.Context) {
	filter := domain.SongFilter{
		Title:     c.Query("title"),
		Performer: c.Query("performer"),
	}

	songs, err := h.service.GetSongs(c.Request.Context(), filter)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, gin.H{"songs": songs})
}

// GetSong 获取歌曲详情, 响应头标注数据来源
func (h *SongHandler) GetSong(c *gin.Context) {
	song, source, err := h.service.GetSongByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SourcedResponse(c, gin.H{"song": song}, source)
}

// PutSong 更新歌曲
func (h *SongHandler) PutSong(c *gin.Context) {
	var req songRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.EditSongByID(c.Request.Context(), c.Param("id"), req.toDomain()); err != nil {
		handleError(c, err)
		return
	}

	httputil.MessageResponse(c, "song updated")
}

// DeleteSong 删除歌曲
func (h *SongHandler) DeleteSong(c *gin.Context) {
	if err := h.service.DeleteSongByID(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	httputil.MessageResponse(c, "song deleted")
}
