package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== 同步限流中间件 ====================

// GlobalSyncRateLimit 全局同步限流中间件
//
// 使用示例:
//
//	admin.POST("/sync-prices",
//	    middleware.GlobalSyncRateLimit(limiter, middleware.SyncTypePrice, 0),
//	    adminCtl.SyncPrices,
//	)
//
// interval 为 0 时使用默认值
func GlobalSyncRateLimit(limiter *SyncRateLimiter, syncType SyncType, interval time.Duration) gin.HandlerFunc {
	if limiter == nil {
		limiter = GetLimiter()
	}
	if interval == 0 {
		interval = GetInterval(syncType)
	}

	return func(c *gin.Context) {
		result := limiter.Check(GlobalSyncKey(syncType), interval)
		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(result.RetryAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       formatRetryMessage(result.RetryAfter),
				"retry_after": int(result.RetryAfter.Seconds()),
				"sync_type":   syncType,
			})
			return
		}

		c.Next()

		// 执行失败 (非 2xx) 时释放冷却
		if c.Writer.Status() >= http.StatusBadRequest {
			limiter.Reset(GlobalSyncKey(syncType))
		}
	}
}

// formatRetryMessage 格式化重试提示信息
func formatRetryMessage(d time.Duration) string {
	seconds := int(d.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("Price sync is cooling down, retry in %d seconds", seconds)
	}

	minutes := seconds / 60
	remainingSeconds := seconds % 60
	if remainingSeconds == 0 {
		return fmt.Sprintf("Price sync is cooling down, retry in %d minutes", minutes)
	}
	return fmt.Sprintf("Price sync is cooling down, retry in %dm%ds", minutes, remainingSeconds)
}
