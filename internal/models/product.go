package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
// 购物车核心只读取商品，商品的写入由目录侧（seed/后台导入）负责。
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // 主键
	UUID        string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"uuid"`  // 商品 UUID
	IsActive    bool           `gorm:"index" json:"is_active"`                             // 是否上架
	Category    string         `gorm:"type:varchar(64);not null;index" json:"category"`    // 分类
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`             // 名称
	Description string         `gorm:"type:text" json:"description"`                       // 描述
	Thumbnail   string         `gorm:"type:varchar(512)" json:"thumbnail"`                 // 缩略图地址
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 当前售价
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
