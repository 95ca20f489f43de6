package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/diasutsman/open-music-api/internal/service"
	"github.com/diasutsman/open-music-api/pkg/httputil"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// PostAuthentication 登录
func (h *AuthHandler) PostAuthentication(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	pair, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.CreatedResponse(c, pair)
}

// PutAuthentication 刷新访问令牌
func (h *AuthHandler) PutAuthentication(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	accessToken, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, gin.H{"accessToken": accessToken})
}

// DeleteAuthentication 登出, 删除刷新令牌
func (h *AuthHandler) DeleteAuthentication(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	if err := h.service.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		handleError(c, err)
		return
	}

	httputil.MessageResponse(c, "refresh token deleted")
}
