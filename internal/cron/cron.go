package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/diasutsman/open-music-api/internal/repository"
	"github.com/diasutsman/open-music-api/pkg/logger"
)

// CronManager 定时任务管理器
// 负责两类后台任务: 清理超期刷新令牌, 周期性上报存储健康状态
type CronManager struct {
	cron           *cron.Cron
	authRepo       repository.AuthRepository
	health         *repository.HealthChecker
	tokenRetention time.Duration
	log            logger.Logger
}

// NewCronManager 创建定时任务管理器
func NewCronManager(authRepo repository.AuthRepository, health *repository.HealthChecker, tokenRetention time.Duration, log logger.Logger) *CronManager {
	return &CronManager{
		cron:           cron.New(cron.WithLocation(time.Local)),
		authRepo:       authRepo,
		health:         health,
		tokenRetention: tokenRetention,
		log:            log,
	}
}

// Start 启动定时任务
func (m *CronManager) Start() error {
	// 每天凌晨2点清理超过保留期的刷新令牌
	if _, err := m.cron.AddFunc("0 2 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := m.RunTokenCleanup(ctx); err != nil {
			m.log.Error("refresh token cleanup failed", logger.Error(err))
		}
	}); err != nil {
		return err
	}

	// 每5分钟上报一次数据库健康状态
	if _, err := m.cron.AddFunc("*/5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		status := m.health.Check(ctx)
		fields := []logger.Field{
			logger.Bool("healthy", status.Healthy),
			logger.Duration("response_time", status.ResponseTime),
			logger.Int("total_conns", int(status.PoolStats.TotalConns)),
			logger.Int("idle_conns", int(status.PoolStats.IdleConns)),
			logger.Any("utilization", status.PoolStats.UtilizationRate),
		}
		if status.Healthy {
			m.log.Debug("database health check", fields...)
		} else {
			m.log.Error("database health check failed",
				append(fields, logger.String("error", status.Error))...)
		}
	}); err != nil {
		return err
	}

	m.cron.Start()
	m.log.Info("cron manager started",
		logger.Duration("token_retention", m.tokenRetention),
	)
	return nil
}

// Stop 停止定时任务, 等待在途任务完成
func (m *CronManager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.log.Info("cron manager stopped")
}

// RunTokenCleanup 立即执行一次令牌清理, 测试或手动触发用
func (m *CronManager) RunTokenCleanup(ctx context.Context) error {
	start := time.Now()
	deleted, err := m.authRepo.DeleteExpired(ctx, m.tokenRetention)
	if err != nil {
		return err
	}
	m.log.Info("refresh token cleanup completed",
		logger.Int64("deleted", deleted),
		logger.Duration("duration", time.Since(start)),
	)
	return nil
}
