package cache

import (
	"context"
	"sync"
	"time"
)

// cacheItem 内部结构，包含值和过期时间
type cacheItem struct {
	value      string
	expiration time.Time
}

// 过期键的清理周期
const defaultSweepInterval = time.Minute

// MemoryStore 进程内缓存，单实例部署时使用
// 后台定期清理过期键，未被再次读取的键 (如未完成授权的 state) 也会被回收
type MemoryStore struct {
	items sync.Map
	now   func() time.Time

	stop      chan struct{}
	closeOnce sync.Once
}

// NewMemoryStore 创建内存缓存，用完调用 Close 停止清理协程
func NewMemoryStore() *MemoryStore {
	return newMemoryStore(defaultSweepInterval, time.Now)
}

func newMemoryStore(interval time.Duration, now func() time.Time) *MemoryStore {
	m := &MemoryStore{now: now, stop: make(chan struct{})}
	go m.janitor(interval)
	return m
}

func (m *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.DeleteExpired()
		case <-m.stop:
			return
		}
	}
}

// DeleteExpired 删除所有已过期的键，返回删除数量
func (m *MemoryStore) DeleteExpired() int {
	now := m.now()
	removed := 0
	m.items.Range(func(key, val interface{}) bool {
		if now.After(val.(cacheItem).expiration) {
			m.items.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Close 停止后台清理
func (m *MemoryStore) Close() error {
	m.closeOnce.Do(func() { close(m.stop) })
	return nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.items.Store(key, cacheItem{
		value:      value,
		expiration: m.now().Add(ttl),
	})
	return nil
}

// Get 获取缓存并验证是否过期
func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	val, ok := m.items.Load(key)
	if !ok {
		return "", ErrMiss
	}

	item := val.(cacheItem)
	if m.now().After(item.expiration) {
		m.items.Delete(key) // 懒删除
		return "", ErrMiss
	}
	return item.value, nil
}

func (m *MemoryStore) Take(ctx context.Context, key string) (string, error) {
	val, ok := m.items.LoadAndDelete(key)
	if !ok {
		return "", ErrMiss
	}
	item := val.(cacheItem)
	if m.now().After(item.expiration) {
		return "", ErrMiss
	}
	return item.value, nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.items.Delete(key)
	return nil
}
