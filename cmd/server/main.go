// @title           Mantri Traders API
// @version         1.0
// @description     Tile and flooring merchant catalog, enquiry capture and admin management API

// @contact.name   API Support
// @contact.email  support@mantritraders.com

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/deevang/mantritraders/internal/app/routes"
	"github.com/deevang/mantritraders/internal/domain/models"
	"github.com/deevang/mantritraders/internal/infrastructure/config"
	"github.com/deevang/mantritraders/internal/infrastructure/database"
	Logger "github.com/deevang/mantritraders/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 创建数据库连接池
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法创建数据库连接池: %v", err)
	}
	db := pool.GetDB()

	// 自动迁移，只会添加新列和新表
	if err := autoMigrate(db); err != nil {
		log.Fatalf("自动迁移失败: %v", err)
	}

	// 管理员账户由 POST /api/auth/setup 一次性创建，这里只做提示
	checkAdminExists(db)

	// 初始化路由
	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort

	// 启动服务器 - 监听所有接口(0.0.0.0)而不是只监听localhost
	Logger.Info("服务器启动在: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型
func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Enquiry{},
	); err != nil {
		return err
	}

	Logger.Info("数据库迁移完成")
	return nil
}

// checkAdminExists 检查是否已有管理员账户
func checkAdminExists(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Where("role = ?", "admin").Count(&count)

	if count == 0 {
		Logger.Warning("系统中还没有管理员账户，请调用 POST /api/auth/setup 完成初始化")
	}
}
