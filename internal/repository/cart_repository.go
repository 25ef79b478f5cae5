package repository

import (
	"context"
	"errors"

	"github.com/cartnext/internal/cache"
	"github.com/cartnext/internal/constants"
	"github.com/cartnext/internal/logger"
	"github.com/cartnext/internal/models"
)

// CartRepository 会话购物车数据访问接口
//
// Fetch 对调用方永不失败：缓存未命中或不可用时合成游客空购物车，
// 牺牲严格一致性换取可用性。Save 尽力而为，错误会记录并返回给
// 调用方，由上层决定是否重试，但不应让用户请求因此失败。
type CartRepository interface {
	Fetch(ctx context.Context, sessionID string) *models.Cart
	Save(ctx context.Context, sessionID string, cart *models.Cart) error
}

// CachedCartRepository 基于缓存存储的实现
type CachedCartRepository struct {
	store cache.CartStore
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(store cache.CartStore) *CachedCartRepository {
	return &CachedCartRepository{store: store}
}

// Fetch 获取会话购物车，未命中或出错时返回游客空购物车
func (r *CachedCartRepository) Fetch(ctx context.Context, sessionID string) *models.Cart {
	cart, found, err := r.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, cache.ErrCartDecode) {
			// 脏数据与「不存在」分开记录，回退行为一致
			logger.Warnw("cart_fetch_decode_failed",
				"session_id", sessionID,
				"error", err,
			)
		} else {
			logger.Warnw("cart_fetch_failed",
				"session_id", sessionID,
				"error", err,
			)
		}
		return models.NewGuestCart(sessionID)
	}
	if !found {
		logger.Debugw("cart_fetch_miss", "session_id", sessionID)
		return models.NewGuestCart(sessionID)
	}
	return cart
}

// Save 保存会话购物车，写入后 24 小时过期
func (r *CachedCartRepository) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	if err := r.store.Set(ctx, sessionID, cart, constants.CartTTL); err != nil {
		logger.Errorw("cart_save_failed",
			"session_id", sessionID,
			"error", err,
		)
		return err
	}
	return nil
}
