package controllers

import (
	"net/http"

	"github.com/deevang/mantritraders/internal/domain/services"
	"github.com/deevang/mantritraders/internal/domain/services/container"
	"github.com/deevang/mantritraders/internal/error/code"
	"github.com/deevang/mantritraders/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HealthController 健康检查控制器
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建健康检查控制器实例
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. Ping 健康检查
// @Summary      健康检查
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthController) Ping() {
	h.Ctx.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"message": "Mantri Traders API is running",
	})
}

// 2. Status 依赖状态检查，报告数据库与Redis的连通性
// @Summary      依赖状态
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health/status [get]
func (h *HealthController) Status() {
	dbStatus := "up"
	if sqlDB, err := h.Container.GetDB().DB(); err != nil {
		dbStatus = "down"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "down"
	}

	redisStatus := "disabled"
	if redisService, ok := h.Container.GetService("redis").(services.InterfaceRedisService); ok && redisService != nil {
		if err := redisService.Ping(); err != nil {
			redisStatus = "down"
		} else {
			redisStatus = "up"
		}
	}

	h.Ctx.JSON(http.StatusOK, gin.H{
		"status":   "OK",
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
