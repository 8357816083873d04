package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Server
	ServerPort string

	// Redis (optional, cache only)
	RedisHost string
	RedisPort string
	RedisDB   int

	// JWT Authentication
	JWTSecretKey string

	// Initial admin account (used by /auth/setup)
	AdminEmail    string
	AdminPassword string

	// Image uploads
	UploadDir     string
	PublicBaseURL string

	// CORS
	CORSAllowOrigin string
}

// LoadConfig loads config from environment variables
func LoadConfig() *Config {
	return &Config{
		// Database config
		DBHost:     getEnvRequired("MYSQL_HOST"),
		DBUser:     getEnvRequired("MYSQL_USER"),
		DBPassword: getEnvRequired("MYSQL_PASSWORD"),
		DBName:     getEnvRequired("MYSQL_DATABASE"),
		DBPort:     getEnv("MYSQL_PORT", "3306"),

		// Server config
		ServerPort: getEnv("SERVER_PORT", "5000"),

		// Redis config
		RedisHost: getEnv("REDIS_HOST", ""),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// JWT Config
		JWTSecretKey: getEnvRequired("JWT_SECRET_KEY"),

		// Admin Config
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@mantritraders.com"),
		AdminPassword: getEnvRequired("ADMIN_PASSWORD"),

		// Upload Config
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:5000"),

		// CORS Config
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// RedisEnabled reports whether a Redis host has been configured
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// 要求必须提供环境变量的辅助函数
func getEnvRequired(key string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	panic(fmt.Sprintf("Required environment variable %s is not set", key))
}
