package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diasutsman/open-music-api/pkg/jwt"
	"github.com/diasutsman/open-music-api/pkg/logger"
)

func newAuthRouter(manager *jwt.Manager) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var gotUserID string

	router := gin.New()
	router.Use(Auth(manager, logger.Default()))
	router.GET("/protected", func(c *gin.Context) {
		gotUserID = c.GetString("user_id")
		c.Status(http.StatusOK)
	})
	return router, &gotUserID
}

func TestAuth_MissingHeader(t *testing.T) {
	manager := jwt.NewManager(&jwt.Config{Secret: "test-secret"})
	router, _ := newAuthRouter(manager)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	manager := jwt.NewManager(&jwt.Config{Secret: "test-secret"})
	router, _ := newAuthRouter(manager)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidTokenSetsUserID(t *testing.T) {
	manager := jwt.NewManager(&jwt.Config{Secret: "test-secret"})
	router, gotUserID := newAuthRouter(manager)

	token, err := manager.GenerateAccessToken("user-a")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-a", *gotUserID)
}

func TestAuth_RefreshTokenRejectedOnProtectedRoute(t *testing.T) {
	manager := jwt.NewManager(&jwt.Config{Secret: "test-secret"})
	router, _ := newAuthRouter(manager)

	token, err := manager.GenerateRefreshToken("user-a")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
