package service

import (
	"strings"

	"github.com/cartnext/internal/logger"
	"github.com/cartnext/internal/models"
	"github.com/cartnext/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductSummary 行项内嵌的商品摘要
// Price 是商品目录的当前售价，可能与行项的快照价不同，两者不做合并。
type ProductSummary struct {
	ID        uint         `json:"id"`
	UUID      string       `json:"uuid"`
	Name      string       `json:"name"`
	Thumbnail string       `json:"thumbnail"`
	Price     models.Money `json:"price"`
}

// CartItemView 购物车行项展示结构
type CartItemView struct {
	UUID     string         `json:"uuid"`
	Price    models.Money   `json:"price"`
	Quantity int            `json:"quantity"`
	Total    models.Money   `json:"total"`
	Product  ProductSummary `json:"product"`
}

// CustomerView 客户展示结构
type CustomerView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CartView 购物车展示结构
type CartView struct {
	UUID          string         `json:"uuid"`
	Customer      CustomerView   `json:"customer"`
	PaymentMethod string         `json:"payment_method"`
	Items         []CartItemView `json:"items"`
	Total         models.Money   `json:"total"`
}

// CartViewService 购物车展示投影服务
type CartViewService struct {
	productRepo repository.ProductRepository
}

// NewCartViewService 创建购物车展示服务
func NewCartViewService(productRepo repository.ProductRepository) *CartViewService {
	return &CartViewService{productRepo: productRepo}
}

// Project 将购物车聚合投影为展示结构
//
// 逐项回查商品目录：商品已不存在（或查询失败）的行项从输出中剔除，
// 也不计入总额，购物车视图不因目录漂移而不可用。
func (s *CartViewService) Project(cart *models.Cart) *CartView {
	view := &CartView{
		UUID:          cart.UUID,
		Customer:      buildCustomerView(cart.Customer),
		PaymentMethod: cart.PaymentMethod,
		Items:         make([]CartItemView, 0, len(cart.Items)),
	}

	total := decimal.Zero
	omitted := 0
	for _, item := range cart.Items {
		product, err := s.productRepo.GetByUUID(item.ProductUUID)
		if err != nil || product == nil {
			omitted++
			continue
		}

		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineTotal)

		view.Items = append(view.Items, CartItemView{
			UUID:     item.UUID,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    models.NewMoneyFromDecimal(lineTotal),
			Product: ProductSummary{
				ID:        product.ID,
				UUID:      product.UUID,
				Name:      product.Name,
				Thumbnail: product.Thumbnail,
				Price:     product.Price,
			},
		})
	}
	view.Total = models.NewMoneyFromDecimal(total)

	if omitted > 0 {
		logger.Debugw("cart_view_items_omitted",
			"cart_uuid", cart.UUID,
			"omitted", omitted,
		)
	}
	return view
}

// buildCustomerView 拼接客户展示名：姓-中间名-名，空段跳过
func buildCustomerView(customer models.Customer) CustomerView {
	parts := make([]string, 0, 3)
	for _, part := range []string{customer.LastName, customer.MiddleName, customer.FirstName} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return CustomerView{
		ID:    customer.ID,
		Name:  strings.Join(parts, " "),
		Email: customer.Email,
	}
}
