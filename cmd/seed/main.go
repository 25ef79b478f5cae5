package main

import (
	"fmt"

	"github.com/cartnext/internal/config"
	"github.com/cartnext/internal/logger"
	"github.com/cartnext/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加商品
	products := []models.Product{
		{
			UUID:        "5f9b2a74-8f2e-4d1b-9b35-1f42c8b9a101",
			Category:    "electronics",
			Name:        "无线蓝牙耳机",
			Description: "高品质音质，长续航，舒适佩戴",
			Thumbnail:   "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
			IsActive:    true,
		},
		{
			UUID:        "5f9b2a74-8f2e-4d1b-9b35-1f42c8b9a102",
			Category:    "electronics",
			Name:        "智能手表",
			Description: "健康监测，运动追踪，消息提醒",
			Thumbnail:   "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=800",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(199.99)),
			IsActive:    true,
		},
		{
			UUID:        "5f9b2a74-8f2e-4d1b-9b35-1f42c8b9a103",
			Category:    "accessories",
			Name:        "便携充电宝",
			Description: "大容量，快速充电，多设备兼容",
			Thumbnail:   "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=800",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(49.99)),
			IsActive:    true,
		},
		{
			UUID:        "5f9b2a74-8f2e-4d1b-9b35-1f42c8b9a104",
			Category:    "lifestyle",
			Name:        "多功能背包",
			Description: "大容量，防水防盗，USB充电接口",
			Thumbnail:   "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(79.99)),
			IsActive:    true,
		},
		{
			UUID:        "5f9b2a74-8f2e-4d1b-9b35-1f42c8b9a105",
			Category:    "lifestyle",
			Name:        "下架演示商品",
			Description: "用于前台下架状态展示",
			Thumbnail:   "https://images.unsplash.com/photo-1512499617640-c74ae3a79d37?w=800",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(29.90)),
			IsActive:    false,
		},
	}

	for _, prod := range products {
		if prod.UUID == "" {
			prod.UUID = uuid.NewString()
		}
		var existing models.Product
		if err := models.DB.Where("uuid = ?", prod.UUID).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			existing.Category = prod.Category
			existing.Name = prod.Name
			existing.Description = prod.Description
			existing.Thumbnail = prod.Thumbnail
			existing.Price = prod.Price
			existing.IsActive = prod.IsActive
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Name)
			}
		}
	}

	fmt.Println("\n✅ Test data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 5 Products (含下架演示商品)")
}
