package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/diasutsman/open-music-api/internal/service"
	"github.com/diasutsman/open-music-api/pkg/httputil"
)

// UserHandler 用户处理器
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler 创建用户处理器
func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// PostUser 注册用户
func (h *UserHandler) PostUser(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
		Fullname string `json:"fullname" binding:"required"`
	}
	if err := httputil.BindAndValidate(c, &req); err != nil {
		handleError(c, err)
		return
	}

	userID, err := h.service.AddUser(c.Request.Context(), req.Username, req.Password, req.Fullname)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.CreatedResponse(c, gin.H{"userId": userID})
}

// GetUser 获取用户信息
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, gin.H{"user": user})
}
