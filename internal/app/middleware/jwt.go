package middleware

import (
	"strings"

	"github.com/deevang/mantritraders/internal/domain/models"
	"github.com/deevang/mantritraders/internal/domain/services"
	"github.com/deevang/mantritraders/internal/error/response"
	"github.com/deevang/mantritraders/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContextUserKey 认证通过后当前账户在上下文中的键
const ContextUserKey = "currentUser"

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// AuthenticateAdmin 管理端路由的认证闸门。
// 缺失/伪造/过期的令牌、账户不存在或已停用，一律返回同一个401，
// 不向调用方透露具体是哪种失败。
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// 提取token并解析回账户，账户会从数据库重新读取
		tokenString := extractToken(authHeader)
		user, err := jwtService.ResolveToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// 角色集合目前只有 admin 一种
		if user.Role != "admin" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// 存储当前账户到上下文
		c.Set(ContextUserKey, user)
		c.Set("userID", user.ID)
		c.Set("role", user.Role)
		c.Next()
	}
}

// CurrentUser 从上下文取出认证后的账户
func CurrentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(ContextUserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
