package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"elite_cards/internal/api/dto"
	"elite_cards/internal/service"
)

// PriceSyncTrigger 调价触发器 (task.TaskManager)
type PriceSyncTrigger interface {
	TriggerPriceSync(ctx context.Context) (*service.SyncResult, error)
}

// SyncController 行情调价触发入口 (cron 与管理员手动)
type SyncController struct {
	trigger PriceSyncTrigger
}

func NewSyncController(trigger PriceSyncTrigger) *SyncController {
	return &SyncController{trigger: trigger}
}

// CronSyncPrices 外部定时器触发
// @Summary 定时调价 (cron)
// @Tags Sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SyncPricesResp
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string "已有调价任务在执行"
// @Router /api/cron/sync-prices [get]
func (c *SyncController) CronSyncPrices(ctx *gin.Context) {
	c.run(ctx)
}

// SyncPrices 管理员手动触发，10 分钟冷却
// @Summary 手动调价 (管理员)
// @Tags Sync
// @Produce json
// @Success 200 {object} dto.SyncPricesResp
// @Failure 409 {object} map[string]string "已有调价任务在执行"
// @Failure 429 {object} map[string]interface{} "冷却中"
// @Router /api/admin/sync-prices [post]
func (c *SyncController) SyncPrices(ctx *gin.Context) {
	c.run(ctx)
}

func (c *SyncController) run(ctx *gin.Context) {
	result, err := c.trigger.TriggerPriceSync(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to sync prices")
		return
	}

	resp := dto.SyncPricesResp{
		Success: true,
		Message: result.Message(),
		Updated: result.Updated,
		Checked: result.Checked,
		Skipped: result.Skipped,
	}
	if len(result.Errors) > 0 {
		resp.Errors = result.Errors
	}
	ctx.JSON(http.StatusOK, resp)
}
