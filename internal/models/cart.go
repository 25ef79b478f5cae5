package models

import "github.com/cartnext/internal/constants"

// Customer 购物车归属的客户信息
// 随购物车整体序列化进缓存，没有独立生命周期。
type Customer struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name"`
	Email      string `json:"email"`
}

// CartItem 购物车行项
// Price 是加入购物车时的快照价，之后不随商品目录价变动。
type CartItem struct {
	UUID        string `json:"uuid"`
	ProductUUID string `json:"product_uuid"`
	Price       Money  `json:"price"`
	Quantity    int    `json:"quantity"`
}

// Cart 购物车聚合
// UUID 与所属会话标识相同，在购物车生命周期内保持稳定。
// Items 按加入顺序保存，仅支持追加。
type Cart struct {
	UUID          string     `json:"uuid"`
	Customer      Customer   `json:"customer"`
	PaymentMethod string     `json:"payment_method"`
	Items         []CartItem `json:"items"`
}

// AddItem 追加购物车行项
func (c *Cart) AddItem(item CartItem) {
	c.Items = append(c.Items, item)
}

// NewGuestCart 构造指定会话的游客空购物车
func NewGuestCart(sessionID string) *Cart {
	return &Cart{
		UUID: sessionID,
		Customer: Customer{
			ID:        constants.GuestCustomerID,
			FirstName: constants.GuestCustomerFirstName,
			Email:     constants.GuestCustomerEmail,
		},
		PaymentMethod: constants.PaymentMethodUnknown,
		Items:         []CartItem{},
	}
}
