package router

import (
	"net/http"

	"github.com/cartnext/internal/config"
	publichandlers "github.com/cartnext/internal/http/handlers/public"
	"github.com/cartnext/internal/logger"
	"github.com/cartnext/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(SessionMiddleware())
	{
		api.GET("/cart", publicHandler.GetCart)
		api.POST("/cart/items", publicHandler.AddCartItem)
		api.GET("/products", publicHandler.ListProducts)
	}

	return r
}
