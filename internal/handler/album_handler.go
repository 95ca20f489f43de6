package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/diasutsman/open-music-api/internal/service"
	"github.com/diasutsman/open-music-api/pkg/httputil"
)

// AlbumHandler 专辑处理器
type AlbumHandler struct {
	service *service.AlbumService
}

// NewAlbumHandler 创建专辑处理器
func NewAlbumHandler(service *service.AlbumService) *AlbumHandler {
	return &AlbumHandler{service: service}
}

// PostAlbum 创建专辑
func (h *AlbumHandler) PostAlbum(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Year int    `json:"year" binding:"required"`
	}
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	albumID, err := h.service.AddAlbum(c.Request.Context(), req.Name, req.Year)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.CreatedResponse(c, gin.H{"albumId": albumID})
}

// GetAlbum 获取专辑详情, 响应头标注数据来源
func (h *AlbumHandler) GetAlbum(c *gin.Context) {
	detail, source, err := h.service.GetAlbumByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SourcedResponse(c, gin.H{"album": detail}, source)
}

// PutAlbum 更新专辑
func (h *AlbumHandler) PutAlbum(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Year int    `json:"year" binding:"required"`
	}
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.EditAlbumByID(c.Request.Context(), c.Param("id"), req.Name, req.Year); err != nil {
		handleError(c, err)
		return
	}

	httputil.MessageResponse(c, "album updated")
}

// DeleteAlbum 删除专辑
func (h *AlbumHandler) DeleteAlbum(c *gin.Context) {
	if err := h.service.DeleteAlbumByID(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	httputil.MessageResponse(c, "album deleted")
}

// PostAlbumCover 设置专辑封面URL
// 封面文件本体由外部对象存储托管, 这里只落地URL
func (h *AlbumHandler) PostAlbumCover(c *gin.Context) {
	var req struct {
		CoverURL string `json:"coverUrl" binding:"required,url"`
	}
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.SetAlbumCoverByID(c.Request.Context(), c.Param("id"), req.CoverURL); err != nil {
		handleError(c, err)
		return
	}

	httputil.CreatedResponse(c, gin.H{"message": "cover updated"})
}

// PostAlbumLike 点赞开关
func (h *AlbumHandler) PostAlbumLike(c *gin.Context) {
	userID := httputil.GetUserID(c)

	liked, err := h.service.ToggleLike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.CreatedResponse(c, gin.H{"liked": liked})
}

// GetAlbumLikes 获取专辑点赞数, 响应头标注数据来源
func (h *AlbumHandler) GetAlbumLikes(c *gin.Context) {
	count, source, err := h.service.GetAlbumLikes(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SourcedResponse(c, gin.H{"likes": count}, source)
}
