package container

import (
	"log"
	"sync"

	"github.com/deevang/mantritraders/internal/domain/services"
	"github.com/deevang/mantritraders/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入。
// 数据库连接与签名密钥都从这里显式注入，不走包级全局变量。
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// 业务服务
	userService    services.InterfaceUserService
	productService services.InterfaceProductService
	enquiryService services.InterfaceEnquiryService
	uploadService  services.InterfaceUploadService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config, c.db)

	// Redis是可选的，没配置就完全跳过，商品服务自动退化为直查数据库
	if c.config.RedisEnabled() {
		redisService := services.NewRedisService(c.config)
		if err := redisService.Ping(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
		} else {
			c.redisService = redisService
		}
	}

	// 初始化业务服务
	c.userService = services.NewUserService(c.db, c.config)
	c.productService = services.NewProductService(c.db, c.config, c.redisService)
	c.enquiryService = services.NewEnquiryService(c.db, c.config)
	c.uploadService = services.NewUploadService(c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "user":
		return c.userService
	case "product":
		return c.productService
	case "enquiry":
		return c.enquiryService
	case "upload":
		return c.uploadService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
