package queue

import (
	"encoding/json"

	"github.com/cartnext/internal/constants"
	"github.com/cartnext/internal/models"

	"github.com/hibiken/asynq"
)

const (
	// TaskCartPersistRetry 购物车落盘重试任务
	TaskCartPersistRetry = constants.TaskCartPersistRetry
)

// CartPersistRetryPayload 购物车落盘重试任务载荷
// 携带失败时刻的完整购物车快照，重试时原样写回。
type CartPersistRetryPayload struct {
	SessionID string      `json:"session_id"`
	Cart      models.Cart `json:"cart"`
}

// NewCartPersistRetryTask 创建购物车落盘重试任务
func NewCartPersistRetryTask(payload CartPersistRetryPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCartPersistRetry, body), nil
}
