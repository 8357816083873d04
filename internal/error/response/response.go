package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deevang/mantritraders/internal/error/code"
)

// ErrorResponse 定义统一的失败响应格式
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success 成功响应，payload 与 success 标记合并为同一层级
func Success(c *gin.Context, payload gin.H) {
	SuccessWithStatus(c, http.StatusOK, payload)
}

// Created 创建成功响应 (201)
func Created(c *gin.Context, payload gin.H) {
	SuccessWithStatus(c, http.StatusCreated, payload)
}

// SuccessWithStatus 指定状态码的成功响应
func SuccessWithStatus(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail 失败响应，状态码与消息由错误码表决定
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), ErrorResponse{Error: code.GetMessage(errorCode)})
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), ErrorResponse{Error: message})
}

// ParamError 参数错误响应
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrValidation, message)
}

// ServerError 服务器错误响应，内部细节只进日志不出网
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrRecordNotFound)
	}
	FailWithMessage(c, code.ErrRecordNotFound, message)
}

// Unauthorized 未授权响应，所有认证失败统一收敛到同一形态
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid)
}
