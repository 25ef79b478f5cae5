package provider

import (
	"time"

	"github.com/cartnext/internal/cache"
	"github.com/cartnext/internal/config"
	"github.com/cartnext/internal/logger"
	"github.com/cartnext/internal/models"
	"github.com/cartnext/internal/queue"
	"github.com/cartnext/internal/repository"
	"github.com/cartnext/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Stores & Repositories
	CartStore   cache.CartStore
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository

	// Services
	CartService     *service.CartService
	CartViewService *service.CartViewService
	ProductService  *service.ProductService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	c.CartStore = cache.NewCartStore()
	c.ProductRepo = repository.NewProductRepository(models.DB)
	c.CartRepo = repository.NewCartRepository(c.CartStore)
}

func (c *Container) initServices() {
	retryDelay := time.Duration(c.Config.Cart.SaveRetryDelaySeconds) * time.Second
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.QueueClient, retryDelay, nil)
	c.CartViewService = service.NewCartViewService(c.ProductRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
}
