package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"elite_cards/internal/service"
	applog "elite_cards/pkg/logger"
)

// 秒级 cron 表达式解析器，与 cron.WithSeconds() 一致
var specParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// PriceSyncer 行情调价执行器 (service.PriceSyncService)
type PriceSyncer interface {
	SyncPrices(ctx context.Context) (*service.SyncResult, error)
}

// ==================== PriceSyncTask 定时调价 ====================

// PriceSyncTask 按 cron 表达式执行行情调价
// 与 cron 接口、管理员手动触发共用同一个 PriceSyncer，重叠执行会被拒绝
type PriceSyncTask struct {
	syncer  PriceSyncer
	spec    string
	timeout time.Duration
	cron    *cron.Cron
}

// NewPriceSyncTask 创建调价任务，spec 非法时返回错误
func NewPriceSyncTask(syncer PriceSyncer, spec string) (*PriceSyncTask, error) {
	if _, err := specParser.Parse(spec); err != nil {
		return nil, fmt.Errorf("无效的调价 cron 表达式 %q: %w", spec, err)
	}
	return &PriceSyncTask{
		syncer:  syncer,
		spec:    spec,
		timeout: time.Hour,
		cron:    cron.New(cron.WithSeconds()),
	}, nil
}

// Start 启动定时任务
func (t *PriceSyncTask) Start() {
	_, _ = t.cron.AddFunc(t.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()
		_, _ = t.RunNow(ctx)
	})

	t.cron.Start()
	applog.L().Info("[PriceSyncTask] 已启动", zap.String("spec", t.spec))
}

// Stop 停止任务，等待执行中的调价结束
func (t *PriceSyncTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	applog.L().Info("[PriceSyncTask] 已停止")
}

// RunNow 立即执行一次
func (t *PriceSyncTask) RunNow(ctx context.Context) (*service.SyncResult, error) {
	start := time.Now()
	res, err := t.syncer.SyncPrices(ctx)
	switch {
	case errors.Is(err, service.ErrSyncInProgress):
		applog.L().Info("[PriceSyncTask] 已有调价在执行，本轮跳过")
		return nil, err
	case err != nil:
		applog.L().Error("[PriceSyncTask] 调价失败", zap.Error(err))
		return nil, err
	}

	applog.L().Info("[PriceSyncTask] 调价完成",
		zap.Int("checked", res.Checked),
		zap.Int("updated", res.Updated),
		zap.Int("errors", len(res.Errors)),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}
