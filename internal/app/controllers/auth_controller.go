package controllers

import (
	"errors"

	"github.com/deevang/mantritraders/internal/app/middleware"
	"github.com/deevang/mantritraders/internal/domain/services"
	"github.com/deevang/mantritraders/internal/domain/services/container"
	"github.com/deevang/mantritraders/internal/error/code"
	"github.com/deevang/mantritraders/internal/error/response"
	"github.com/deevang/mantritraders/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Login()
	Me()
	Setup()
}

// AuthController 认证控制器
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" example:"admin@mantritraders.com"`
	Password string `json:"password" example:"Admin@123"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "me":
			controller.Me()
		case "setup":
			controller.Setup()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// 1. Login 管理员登录
// @Summary      管理员登录
// @Description  校验邮箱密码，签发7天有效期的Bearer令牌
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body body LoginRequest true "登录凭证"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "Email and password are required")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "Email and password are required")
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			// 密码错误、账户停用等都收敛成同一个401
			response.Fail(c.Ctx, code.ErrInvalidCredentials)
			return
		}
		logger.Error("登录失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token": result.Token,
		"user": gin.H{
			"id":    result.User.ID,
			"email": result.User.Email,
			"role":  result.User.Role,
		},
	})
}

// 2. Me 获取当前登录账户
// @Summary      获取当前账户
// @Description  根据Bearer令牌返回当前登录的管理员信息
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Router       /auth/me [get]
// @Security     BearerAuth
func (c *AuthController) Me() {
	user := middleware.CurrentUser(c.Ctx)
	if user == nil {
		response.Unauthorized(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// 3. Setup 一次性初始化管理员
// @Summary      初始化管理员账户
// @Description  从环境配置创建初始管理员，系统中已存在管理员时返回400
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Router       /auth/setup [post]
func (c *AuthController) Setup() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.SetupAdmin()
	if err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			response.Fail(c.Ctx, code.ErrAdminAlreadyExist)
			return
		}
		logger.Error("初始化管理员失败: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	logger.Info("已创建初始管理员账户: %s", user.Email)
	response.Success(c.Ctx, gin.H{
		"message": "Admin user created successfully",
		"user": gin.H{
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
