package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/diasutsman/open-music-api/internal/service"
	"github.com/diasutsman/open-music-api/pkg/httputil"
)

// CollaborationHandler 协作处理器
type CollaborationHandler struct {
	service *service.CollaborationService
}

// NewCollaborationHandler 创建协作处理器
func NewCollaborationHandler(service *service.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{service: service}
}

type collaborationRequest struct {
	PlaylistID string `json:"playlistId" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
}

// PostCollaboration 为歌单添加协作者, 仅属主
func (h *CollaborationHandler) PostCollaboration(c *gin.Context) {
	actorID := httputil.GetUserID(c)

	var req collaborationRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	collabID, err := h.service.AddCollaboration(c.Request.Context(), req.PlaylistID, req.UserID, actorID)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.CreatedResponse(c, gin.H{"collaborationId": collabID})
}

// DeleteCollaboration 移除歌单协作者, 仅属主
func (h *CollaborationHandler) DeleteCollaboration(c *gin.Context) {
	actorID := httputil.GetUserID(c)

	var req collaborationRequest
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.DeleteCollaboration(c.Request.Context(), req.PlaylistID, req.UserID, actorID); err != nil {
		handleError(c, err)
		return
	}

	httputil.MessageResponse(c, "collaboration removed")
}
