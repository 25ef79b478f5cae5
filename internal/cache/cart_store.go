package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cartnext/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrRedisDisabled 缓存未启用
var ErrRedisDisabled = errors.New("redis 未启用")

// ErrCartDecode 缓存中的购物车数据无法反序列化
// 与「键不存在」区分开，调用方可以单独观测到脏数据。
var ErrCartDecode = errors.New("购物车缓存数据解码失败")

// ConnectorError 缓存后端传输层错误
type ConnectorError struct {
	Op  string
	Err error
}

func (e *ConnectorError) Error() string {
	return fmt.Sprintf("cache connector %s: %v", e.Op, e.Err)
}

func (e *ConnectorError) Unwrap() error {
	return e.Err
}

// CartStore 购物车缓存访问接口
// Get 的第二个返回值表示键是否存在；键不存在不是错误。
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, bool, error)
	Set(ctx context.Context, sessionID string, cart *models.Cart, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
}

// RedisCartStore 基于 Redis 的购物车缓存实现
type RedisCartStore struct{}

// NewCartStore 创建购物车缓存
func NewCartStore() *RedisCartStore {
	return &RedisCartStore{}
}

func cartKey(sessionID string) string {
	return buildKey("session:" + sessionID)
}

// Get 按会话标识读取购物车
func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*models.Cart, bool, error) {
	client := Client()
	if client == nil {
		return nil, false, &ConnectorError{Op: "get", Err: ErrRedisDisabled}
	}
	val, err := client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &ConnectorError{Op: "get", Err: err}
	}
	var cart models.Cart
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCartDecode, err)
	}
	return &cart, true, nil
}

// Set 按会话标识写入购物车并设置过期时间，覆盖旧值
func (s *RedisCartStore) Set(ctx context.Context, sessionID string, cart *models.Cart, ttl time.Duration) error {
	client := Client()
	if client == nil {
		return &ConnectorError{Op: "set", Err: ErrRedisDisabled}
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	if err := client.Set(ctx, cartKey(sessionID), payload, ttl).Err(); err != nil {
		return &ConnectorError{Op: "set", Err: err}
	}
	return nil
}

// Exists 判断会话是否已有购物车
func (s *RedisCartStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	client := Client()
	if client == nil {
		return false, &ConnectorError{Op: "exists", Err: ErrRedisDisabled}
	}
	count, err := client.Exists(ctx, cartKey(sessionID)).Result()
	if err != nil {
		return false, &ConnectorError{Op: "exists", Err: err}
	}
	return count > 0, nil
}
