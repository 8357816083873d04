package routes

import (
	"net/http"

	_ "github.com/deevang/mantritraders/docs"
	"github.com/deevang/mantritraders/internal/app/controllers"
	"github.com/deevang/mantritraders/internal/app/middleware"
	"github.com/deevang/mantritraders/internal/domain/services/container"
	"github.com/deevang/mantritraders/internal/error/response"
	"github.com/deevang/mantritraders/internal/infrastructure/config"
	"github.com/deevang/mantritraders/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin，最外层兜底把未处理的panic转成通用500
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("未处理的异常: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Something went wrong!"})
	}))

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)

	// 上传图片的静态回源路径
	r.Static("/uploads", cfg.UploadDir)

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 未匹配路由统一返回404
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Route not found"})
	})

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由，不经过认证闸门
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加IP限流中间件 - 每秒允许20个请求，最多突发40个请求
	api.Use(middleware.IPRateLimiter(20, 40))

	// 健康检查路由
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	// 认证路由
	api.POST("/auth/login", controllers.HandleAuthFunc(container, "login"))
	api.POST("/auth/setup", controllers.HandleAuthFunc(container, "setup"))

	// 公开商品目录
	api.GET("/products", controllers.HandleProductFunc(container, "getProducts"))
	api.GET("/products/categories/list", controllers.HandleProductFunc(container, "getCategories"))
	api.GET("/products/:id", controllers.HandleProductFunc(container, "getProduct"))

	// 访客提交咨询 - 按IP+路径再收紧一档，挡表单灌水
	api.POST("/enquiries",
		middleware.CombinedRateLimiter(2, 5),
		controllers.HandleEnquiryFunc(container, "createEnquiry"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateAdmin())

	// 当前账户
	auth.GET("/auth/me", controllers.HandleAuthFunc(container, "me"))

	// 商品管理
	auth.POST("/products", controllers.HandleProductFunc(container, "createProduct"))
	auth.PUT("/products/:id", controllers.HandleProductFunc(container, "updateProduct"))
	auth.DELETE("/products/:id", controllers.HandleProductFunc(container, "deleteProduct"))
	auth.POST("/products/upload-image", controllers.HandleProductFunc(container, "uploadImage"))

	// 咨询管理
	auth.GET("/enquiries", controllers.HandleEnquiryFunc(container, "getEnquiries"))
	auth.GET("/enquiries/stats/overview", controllers.HandleEnquiryFunc(container, "getStats"))
	auth.GET("/enquiries/:id", controllers.HandleEnquiryFunc(container, "getEnquiry"))
	auth.PATCH("/enquiries/:id/status", controllers.HandleEnquiryFunc(container, "updateStatus"))
	auth.DELETE("/enquiries/:id", controllers.HandleEnquiryFunc(container, "deleteEnquiry"))
}
