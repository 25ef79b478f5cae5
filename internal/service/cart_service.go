package service

import (
	"context"
	"time"

	"github.com/cartnext/internal/logger"
	"github.com/cartnext/internal/models"
	"github.com/cartnext/internal/queue"
	"github.com/cartnext/internal/repository"

	"github.com/google/uuid"
)

// IDGenerator 生成购物车行项的唯一标识
type IDGenerator func() string

// CartService 购物车服务
//
// 并发语义：同一会话的并发加购按「后写覆盖」处理，先写入的追加可能被
// 覆盖丢弃。fetch→append→save 之间不持有任何锁。
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	queueClient *queue.Client
	retryDelay  time.Duration
	newItemID   IDGenerator
}

// NewCartService 创建购物车服务
// idGen 为空时使用 uuid 生成行项标识。
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, queueClient *queue.Client, retryDelay time.Duration, idGen IDGenerator) *CartService {
	if idGen == nil {
		idGen = uuid.NewString
	}
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		queueClient: queueClient,
		retryDelay:  retryDelay,
		newItemID:   idGen,
	}
}

// GetCart 获取会话购物车，没有则返回游客空购物车
func (s *CartService) GetCart(ctx context.Context, sessionID string) *models.Cart {
	return s.cartRepo.Fetch(ctx, sessionID)
}

// AddItem 向会话购物车追加商品
//
// 商品不存在时返回 ErrProductNotFound，购物车不发生任何变更。
// 行项价格取商品当前售价的快照。数量按原样接受，不做正数校验。
// 落盘失败不影响返回结果，改由队列延迟重试。
func (s *CartService) AddItem(ctx context.Context, sessionID, productUUID string, quantity int) (*models.Cart, error) {
	cart := s.cartRepo.Fetch(ctx, sessionID)

	product, err := s.productRepo.GetByUUID(productUUID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart.AddItem(models.CartItem{
		UUID:        s.newItemID(),
		ProductUUID: product.UUID,
		Price:       product.Price,
		Quantity:    quantity,
	})

	if err := s.cartRepo.Save(ctx, sessionID, cart); err != nil {
		s.enqueuePersistRetry(sessionID, cart)
	}
	return cart, nil
}

func (s *CartService) enqueuePersistRetry(sessionID string, cart *models.Cart) {
	if !s.queueClient.Enabled() {
		return
	}
	payload := queue.CartPersistRetryPayload{
		SessionID: sessionID,
		Cart:      *cart,
	}
	if err := s.queueClient.EnqueueCartPersistRetry(payload, s.retryDelay); err != nil {
		logger.Warnw("cart_enqueue_persist_retry_failed",
			"session_id", sessionID,
			"error", err,
		)
		return
	}
	logger.Infow("cart_persist_retry_enqueued",
		"session_id", sessionID,
		"delay", s.retryDelay,
	)
}
