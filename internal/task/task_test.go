package task

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elite_cards/internal/service"
)

// ==================== 测试桩 ====================

type mockSyncer struct {
	mu       sync.Mutex
	runCount int
	err      error
}

func (m *mockSyncer) SyncPrices(context.Context) (*service.SyncResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runCount++
	if m.err != nil {
		return nil, m.err
	}
	return &service.SyncResult{Checked: 2, Updated: 1}, nil
}

func (m *mockSyncer) GetRunCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runCount
}

// ==================== PriceSyncTask ====================

func TestNewPriceSyncTask_Spec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"六段表达式", "0 0 */6 * * *", false},
		{"描述符", "@hourly", false},
		{"五段表达式缺少秒", "0 */6 * * *", true},
		{"非法表达式", "every six hours", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPriceSyncTask(&mockSyncer{}, tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPriceSyncTask_ScheduledExecution(t *testing.T) {
	syncer := &mockSyncer{}
	task, err := NewPriceSyncTask(syncer, "* * * * * *")
	require.NoError(t, err)

	task.Start()
	assert.Eventually(t, func() bool { return syncer.GetRunCount() >= 1 }, 3*time.Second, 50*time.Millisecond)

	task.Stop()
	stopped := syncer.GetRunCount()
	time.Sleep(1200 * time.Millisecond)
	assert.Equal(t, stopped, syncer.GetRunCount(), "停止后不应再执行")
}

func TestPriceSyncTask_RunNow(t *testing.T) {
	task, err := NewPriceSyncTask(&mockSyncer{}, "@hourly")
	require.NoError(t, err)

	res, err := task.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)

	busy, err := NewPriceSyncTask(&mockSyncer{err: service.ErrSyncInProgress}, "@hourly")
	require.NoError(t, err)
	_, err = busy.RunNow(context.Background())
	assert.ErrorIs(t, err, service.ErrSyncInProgress)
}

// ==================== TaskManager ====================

func TestTaskManager_Disabled(t *testing.T) {
	syncer := &mockSyncer{}
	tm, err := NewTaskManager(&TaskManagerDeps{PriceSyncer: syncer}, nil)
	require.NoError(t, err)

	tm.Start()
	defer tm.Stop()

	// 定时调价关闭时手动触发仍然执行
	res, err := tm.TriggerPriceSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, syncer.GetRunCount())
}

func TestTaskManager_NoSyncer(t *testing.T) {
	tm, err := NewTaskManager(&TaskManagerDeps{}, &TaskManagerConfig{
		PriceSyncEnabled: true,
		PriceSyncSpec:    "@daily",
	})
	require.NoError(t, err)

	_, err = tm.TriggerPriceSync(context.Background())
	assert.ErrorIs(t, err, ErrNoPriceSyncer)
}

func TestTaskManager_Enabled(t *testing.T) {
	syncer := &mockSyncer{}
	tm, err := NewTaskManager(&TaskManagerDeps{PriceSyncer: syncer}, &TaskManagerConfig{
		PriceSyncEnabled: true,
		PriceSyncSpec:    "@daily",
	})
	require.NoError(t, err)

	tm.Start()
	res, err := tm.TriggerPriceSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Checked)
	tm.Stop()

	assert.Equal(t, 1, syncer.GetRunCount())
}

func TestTaskManager_InvalidSpec(t *testing.T) {
	_, err := NewTaskManager(&TaskManagerDeps{PriceSyncer: &mockSyncer{}}, &TaskManagerConfig{
		PriceSyncEnabled: true,
		PriceSyncSpec:    "bogus",
	})
	assert.Error(t, err)

	syncErr := errors.New("db down")
	task, err := NewPriceSyncTask(&mockSyncer{err: syncErr}, "@daily")
	require.NoError(t, err)
	_, err = task.RunNow(context.Background())
	assert.ErrorIs(t, err, syncErr)
}
