package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/diasutsman/open-music-api/internal/cron"
	"github.com/diasutsman/open-music-api/internal/handler"
	"github.com/diasutsman/open-music-api/internal/repository"
	"github.com/diasutsman/open-music-api/internal/service"
	"github.com/diasutsman/open-music-api/migrations"
	"github.com/diasutsman/open-music-api/pkg/cache"
	"github.com/diasutsman/open-music-api/pkg/config"
	"github.com/diasutsman/open-music-api/pkg/crypto"
	"github.com/diasutsman/open-music-api/pkg/db"
	"github.com/diasutsman/open-music-api/pkg/jwt"
	"github.com/diasutsman/open-music-api/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	log := logger.Default()
	log.Info("Starting open-music-api...")

	cfg, err := config.NewFileLoader(*configPath).Load()
	if err != nil {
		log.Fatal("Failed to load config", logger.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Run schema migrations on a plain database/sql connection,
	// then hand the pgx pool to the repositories.
	if err := runMigrations(cfg, log); err != nil {
		log.Fatal("Failed to run migrations", logger.Error(err))
	}

	pool, err := repository.NewPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("Failed to connect to postgres", logger.Error(err))
	}
	defer pool.Close()

	cacheClient, err := cache.NewClient(&cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolTimeout:  cfg.Redis.PoolTimeout,
		MaxRetries:   cfg.Redis.MaxRetries,
	})
	if err != nil {
		log.Fatal("Failed to connect to redis", logger.Error(err))
	}
	defer cacheClient.Close()

	// Repositories
	albumRepo := repository.NewAlbumRepository(pool)
	songRepo := repository.NewSongRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	playlistRepo := repository.NewPlaylistRepository(pool)
	playlistSongRepo := repository.NewPlaylistSongRepository(pool)
	collabRepo := repository.NewCollaborationRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	likeRepo := repository.NewLikeRepository(pool)
	authRepo := repository.NewAuthRepository(pool)

	// Shared infrastructure
	resolver := cache.NewResolver(cacheClient, cfg.Cache.TTL, log)
	invalidator := service.NewInvalidator(resolver, log)
	access := service.NewAccessResolver(playlistRepo, collabRepo)
	hasher := crypto.NewPasswordHasher()
	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:        cfg.JWT.Secret,
		Issuer:        cfg.JWT.Issuer,
		TokenExpiry:   cfg.JWT.TokenExpiry,
		RefreshExpiry: cfg.JWT.RefreshExpiry,
	})

	// Services
	albumService := service.NewAlbumService(albumRepo, likeRepo, resolver, invalidator)
	songService := service.NewSongService(songRepo, resolver, invalidator)
	userService := service.NewUserService(userRepo, hasher)
	authService := service.NewAuthService(userRepo, authRepo, jwtManager, hasher)
	playlistService := service.NewPlaylistService(
		playlistRepo, playlistSongRepo, songRepo, activityRepo,
		access, resolver, invalidator, log,
	)
	collabService := service.NewCollaborationService(collabRepo, userRepo, access, invalidator)

	// HTTP layer
	router := handler.NewRouter(handler.Handlers{
		Album:         handler.NewAlbumHandler(albumService),
		Song:          handler.NewSongHandler(songService),
		User:          handler.NewUserHandler(userService),
		Auth:          handler.NewAuthHandler(authService),
		Playlist:      handler.NewPlaylistHandler(playlistService),
		Collaboration: handler.NewCollaborationHandler(collabService),
	}, jwtManager, log)

	// Background jobs
	cronManager := cron.NewCronManager(
		authRepo,
		repository.NewHealthChecker(pool),
		cfg.JWT.RefreshExpiry,
		log,
	)
	if err := cronManager.Start(); err != nil {
		log.Fatal("Failed to start cron manager", logger.Error(err))
	}
	defer cronManager.Stop()

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("HTTP server listening", logger.Int("port", cfg.Server.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", logger.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received shutdown signal", logger.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", logger.Error(err))
	}

	log.Info("open-music-api stopped")
}

func runMigrations(cfg *config.Config, log logger.Logger) error {
	conn, err := db.Open(cfg.Postgres.DSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	migrator, err := db.NewMigrator(conn, migrations.FS, ".")
	if err != nil {
		return err
	}

	if err := migrator.EnsureSchema(); err != nil {
		return err
	}

	version, _, err := migrator.Version()
	if err != nil {
		return err
	}
	log.Info("Schema is up to date", logger.Any("version", version))
	return nil
}
