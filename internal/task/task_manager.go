package task

import (
	"context"
	"errors"

	"elite_cards/internal/service"
	applog "elite_cards/pkg/logger"
)

var ErrNoPriceSyncer = errors.New("未配置调价执行器")

// ==================== TaskManager 后台任务管理器 ====================

// TaskManager 统一管理后台定时任务，也是手动调价的统一入口
type TaskManager struct {
	syncer    PriceSyncer
	priceTask *PriceSyncTask // 未启用定时调价时为 nil
}

// TaskManagerDeps 任务管理器依赖
type TaskManagerDeps struct {
	PriceSyncer PriceSyncer
}

// TaskManagerConfig 任务管理器配置
type TaskManagerConfig struct {
	PriceSyncEnabled bool
	PriceSyncSpec    string
}

// DefaultConfig 默认配置 (每 6 小时调价一次，默认关闭)
func DefaultConfig() *TaskManagerConfig {
	return &TaskManagerConfig{
		PriceSyncEnabled: false,
		PriceSyncSpec:    "0 0 */6 * * *",
	}
}

// NewTaskManager 创建任务管理器
func NewTaskManager(deps *TaskManagerDeps, cfg *TaskManagerConfig) (*TaskManager, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	tm := &TaskManager{syncer: deps.PriceSyncer}

	if cfg.PriceSyncEnabled && deps.PriceSyncer != nil {
		t, err := NewPriceSyncTask(deps.PriceSyncer, cfg.PriceSyncSpec)
		if err != nil {
			return nil, err
		}
		tm.priceTask = t
	}

	return tm, nil
}

// ==================== 生命周期管理 ====================

// Start 启动所有任务
func (tm *TaskManager) Start() {
	applog.L().Info("[TaskManager] 正在启动后台任务...")

	if tm.priceTask != nil {
		tm.priceTask.Start()
	}

	applog.L().Info("[TaskManager] 后台任务已全部启动")
}

// Stop 停止所有任务
func (tm *TaskManager) Stop() {
	applog.L().Info("[TaskManager] 正在停止后台任务...")

	if tm.priceTask != nil {
		tm.priceTask.Stop()
	}

	applog.L().Info("[TaskManager] 后台任务已全部停止")
}

// ==================== 手动触发接口 ====================

// TriggerPriceSync 立即执行一次调价 (cron 接口与管理员手动触发)
// 定时调价关闭时仍可手动触发
func (tm *TaskManager) TriggerPriceSync(ctx context.Context) (*service.SyncResult, error) {
	if tm.priceTask != nil {
		return tm.priceTask.RunNow(ctx)
	}
	if tm.syncer == nil {
		return nil, ErrNoPriceSyncer
	}
	applog.L().Info("[TaskManager] 定时调价未启用，手动执行")
	return tm.syncer.SyncPrices(ctx)
}
