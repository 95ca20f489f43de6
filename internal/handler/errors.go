package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diasutsman/open-music-api/internal/domain"
	apperrors "github.com/diasutsman/open-music-api/pkg/errors"
	"github.com/diasutsman/open-music-api/pkg/httputil"
)

// handleError 统一处理domain错误并返回适当的HTTP状态码
func handleError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		httputil.ErrorResponse(c, appErr)
		return
	}

	switch {
	// 404 Not Found
	case errors.Is(err, domain.ErrAlbumNotFound),
		errors.Is(err, domain.ErrSongNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPlaylistNotFound),
		errors.Is(err, domain.ErrSongNotInPlaylist),
		errors.Is(err, domain.ErrCollaborationNotFound):
		httputil.ErrorResponse(c, apperrors.New(apperrors.ErrCodeNotFound, err.Error(), http.StatusNotFound))

	// 409 Conflict
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrSongAlreadyInPlaylist),
		errors.Is(err, domain.ErrCollaborationExists):
		httputil.ErrorResponse(c, apperrors.New(apperrors.ErrCodeConflict, err.Error(), http.StatusConflict))

	// 400 Bad Request
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidAlbumName),
		errors.Is(err, domain.ErrInvalidAlbumYear),
		errors.Is(err, domain.ErrInvalidSongTitle),
		errors.Is(err, domain.ErrInvalidSongYear),
		errors.Is(err, domain.ErrInvalidSongGenre),
		errors.Is(err, domain.ErrInvalidSongPerformer),
		errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrInvalidFullname),
		errors.Is(err, domain.ErrInvalidPlaylistName),
		errors.Is(err, domain.ErrCollaborateWithOwner),
		errors.Is(err, domain.ErrRefreshTokenNotFound):
		httputil.ErrorResponse(c, apperrors.New(apperrors.ErrCodeBadRequest, err.Error(), http.StatusBadRequest))

	// 401 Unauthorized
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		httputil.ErrorResponse(c, apperrors.New(apperrors.ErrCodeUnauthorized, err.Error(), http.StatusUnauthorized))

	// 403 Forbidden
	case errors.Is(err, domain.ErrForbidden):
		httputil.ErrorResponse(c, apperrors.New(apperrors.ErrCodeForbidden, err.Error(), http.StatusForbidden))

	// 500 Internal Server Error (默认), 不向外泄露内部细节
	default:
		httputil.ErrorResponse(c, apperrors.ErrInternal.WithError(err))
	}
}
