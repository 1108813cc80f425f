package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss 键不存在或已过期
var ErrMiss = errors.New("cache: key not found")

// Store 简单 KV 缓存，用于 OAuth state 与卡牌数据缓存
type Store interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	// Take 读取并删除 (用完即焚)
	Take(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
