package service

import (
	"strings"

	"github.com/cartnext/internal/models"
	"github.com/cartnext/internal/repository"
)

// ProductView 商品列表展示结构
type ProductView struct {
	ID          uint         `json:"id"`
	UUID        string       `json:"uuid"`
	Category    string       `json:"category"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Thumbnail   string       `json:"thumbnail"`
	Price       models.Money `json:"price"`
}

// ProductService 商品浏览服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品浏览服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ListByCategory 按分类列出上架商品
func (s *ProductService) ListByCategory(category string) ([]ProductView, error) {
	if strings.TrimSpace(category) == "" {
		return nil, ErrCategoryRequired
	}
	products, err := s.productRepo.ListByCategory(category, true)
	if err != nil {
		return nil, err
	}
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, ProductView{
			ID:          product.ID,
			UUID:        product.UUID,
			Category:    product.Category,
			Name:        product.Name,
			Description: product.Description,
			Thumbnail:   product.Thumbnail,
			Price:       product.Price,
		})
	}
	return views, nil
}
