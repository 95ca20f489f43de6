package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthChecker 数据库健康检查器
type HealthChecker struct {
	pool *pgxpool.Pool
}

// NewHealthChecker 创建健康检查器
func NewHealthChecker(pool *pgxpool.Pool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

// HealthStatus 健康状态
type HealthStatus struct {
	Healthy      bool           `json:"healthy"`
	Timestamp    time.Time      `json:"timestamp"`
	ResponseTime time.Duration  `json:"response_time_ms"`
	Error        string         `json:"error,omitempty"`
	PoolStats    PoolStatistics `json:"pool_stats"`
}

// PoolStatistics 连接池统计信息
type PoolStatistics struct {
	AcquiredConns   int32   `json:"acquired_conns"`   // 当前已获取的连接数
	IdleConns       int32   `json:"idle_conns"`       // 空闲连接数
	MaxConns        int32   `json:"max_conns"`        // 最大连接数
	TotalConns      int32   `json:"total_conns"`      // 总连接数
	UtilizationRate float64 `json:"utilization_rate"` // 连接池利用率 (acquired/max)
}

// Check 执行健康检查
func (h *HealthChecker) Check(ctx context.Context) *HealthStatus {
	start := time.Now()
	status := &HealthStatus{Timestamp: start}

	var result int
	err := h.pool.QueryRow(ctx, "SELECT 1").Scan(&result)
	status.ResponseTime = time.Since(start)

	if err != nil {
		status.Healthy = false
		status.Error = err.Error()
	} else {
		status.Healthy = true
	}

	stats := h.pool.Stat()
	status.PoolStats = PoolStatistics{
		AcquiredConns: stats.AcquiredConns(),
		IdleConns:     stats.IdleConns(),
		MaxConns:      stats.MaxConns(),
		TotalConns:    stats.TotalConns(),
	}
	if stats.MaxConns() > 0 {
		status.PoolStats.UtilizationRate = float64(stats.AcquiredConns()) / float64(stats.MaxConns())
	}

	return status
}
