package repository

import (
	"errors"
	"strings"

	"github.com/cartnext/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品目录数据访问接口
// GetByUUID 未找到时返回 (nil, nil)，由调用方决定如何处理。
type ProductRepository interface {
	GetByUUID(uuid string) (*models.Product, error)
	ListByCategory(category string, onlyActive bool) ([]models.Product, error)
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetByUUID 按 UUID 获取商品
func (r *GormProductRepository) GetByUUID(uuid string) (*models.Product, error) {
	trimmed := strings.TrimSpace(uuid)
	if trimmed == "" {
		return nil, nil
	}
	var product models.Product
	err := r.db.Where("uuid = ?", trimmed).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListByCategory 按分类获取商品列表
func (r *GormProductRepository) ListByCategory(category string, onlyActive bool) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Where("category = ?", strings.TrimSpace(category))
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("id asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
