package constants

import "time"

// 购物车常量
const (
	// CartTTL 购物车缓存有效期（自最近一次写入起）
	CartTTL = 24 * time.Hour

	// PaymentMethodUnknown 默认支付方式标记
	PaymentMethodUnknown = "unknown"
)

// 游客默认身份常量
const (
	GuestCustomerID        = 0
	GuestCustomerFirstName = "Guest"
	GuestCustomerEmail     = "guest@example.com"
)

// 会话常量
const (
	// SessionCookieName 会话标识 Cookie 名称
	SessionCookieName = "cart_session"
	// SessionHeaderName 会话标识请求头名称
	SessionHeaderName = "X-Session-ID"
)

// 队列常量
const (
	QueueDefault = "default"

	// TaskCartPersistRetry 购物车落盘重试任务
	TaskCartPersistRetry = "cart:persist_retry"
)
