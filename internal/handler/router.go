package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diasutsman/open-music-api/internal/middleware"
	"github.com/diasutsman/open-music-api/pkg/jwt"
	"github.com/diasutsman/open-music-api/pkg/logger"
)

// Handlers 路由需要的全部处理器
type Handlers struct {
	Album         *AlbumHandler
	Song          *SongHandler
	User          *UserHandler
	Auth          *AuthHandler
	Playlist      *PlaylistHandler
	Collaboration *CollaborationHandler
}

// NewRouter 组装路由与中间件
func NewRouter(h Handlers, jwtManager *jwt.Manager, log logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logging(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 公开接口
	albums := router.Group("/albums")
	{
		albums.POST("", h.Album.PostAlbum)
		albums.GET("/:id", h.Album.GetAlbum)
		albums.PUT("/:id", h.Album.PutAlbum)
		albums.DELETE("/:id", h.Album.DeleteAlbum)
		albums.POST("/:id/covers", h.Album.PostAlbumCover)
		albums.GET("/:id/likes", h.Album.GetAlbumLikes)
	}

	songs := router.Group("/songs")
	{
		songs.POST("", h.Song.PostSong)
		songs.GET("", h.Song.GetSongs)
		songs.GET("/:id", h.Song.GetSong)
		songs.PUT("/:id", h.Song.PutSong)
		songs.DELETE("/:id", h.Song.DeleteSong)
	}

	router.POST("/users", h.User.PostUser)
	router.GET("/users/:id", h.User.GetUser)

	auth := router.Group("/authentications")
	{
		auth.POST("", h.Auth.PostAuthentication)
		auth.PUT("", h.Auth.PutAuthentication)
		auth.DELETE("", h.Auth.DeleteAuthentication)
	}

	// 需要登录的接口
	authed := router.Group("")
	authed.Use(middleware.Auth(jwtManager, log))
	{
		authed.POST("/albums/:id/likes", h.Album.PostAlbumLike)

		playlists := authed.Group("/playlists")
		{
			playlists.POST("", h.Playlist.PostPlaylist)
			playlists.GET("", h.Playlist.GetPlaylists)
			playlists.DELETE("/:id", h.Playlist.DeletePlaylist)
			playlists.POST("/:id/songs", h.Playlist.PostPlaylistSong)
			playlists.GET("/:id/songs", h.Playlist.GetPlaylistSongs)
			playlists.DELETE("/:id/songs", h.Playlist.DeletePlaylistSong)
			playlists.GET("/:id/activities", h.Playlist.GetPlaylistActivities)
		}

		collaborations := authed.Group("/collaborations")
		{
			collaborations.POST("", h.Collaboration.PostCollaboration)
			collaborations.DELETE("", h.Collaboration.DeleteCollaboration)
		}
	}

	return router
}
