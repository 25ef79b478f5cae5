package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cartnext/internal/constants"
	"github.com/cartnext/internal/logger"
	"github.com/cartnext/internal/provider"
	"github.com/cartnext/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCartPersistRetry, c.handleCartPersistRetry)
}

// handleCartPersistRetry 重放失败的购物车写入
// 写回的是失败时刻的快照，与在线路径一样遵循后写覆盖语义。
func (c *Consumer) handleCartPersistRetry(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_cart_persist_retry_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CartPersistRetryPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_cart_persist_retry_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.SessionID) == "" {
		logger.Debugw("worker_cart_persist_retry_skip_empty_session")
		return nil
	}

	cart := payload.Cart
	if err := c.CartStore.Set(ctx, payload.SessionID, &cart, constants.CartTTL); err != nil {
		logger.Warnw("worker_cart_persist_retry_failed",
			"session_id", payload.SessionID,
			"error", err,
		)
		return err
	}
	logger.Infow("worker_cart_persist_retry_done",
		"session_id", payload.SessionID,
		"items", len(cart.Items),
	)
	return nil
}
