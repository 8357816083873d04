package services

import (
	"testing"

	"github.com/deevang/mantritraders/internal/domain/models"
	"github.com/deevang/mantritraders/internal/infrastructure/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB 每个测试用一个独立的内存SQLite库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// 内存库绑定在单个连接上，连接池收窄到1避免跨连接丢表
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Enquiry{},
	))
	return db
}

// testConfig 测试用配置，不读环境变量
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		ServerPort:      "5000",
		JWTSecretKey:    "test-secret-key",
		AdminEmail:      "admin@mantritraders.com",
		AdminPassword:   "Admin@123",
		UploadDir:       t.TempDir(),
		PublicBaseURL:   "http://localhost:5000",
		CORSAllowOrigin: "*",
	}
}
