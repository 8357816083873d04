package controllers

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/deevang/mantritraders/internal/domain/models"
	"github.com/deevang/mantritraders/internal/domain/services"
	"github.com/deevang/mantritraders/internal/domain/services/container"
	"github.com/deevang/mantritraders/internal/error/code"
	"github.com/deevang/mantritraders/internal/error/response"
	"github.com/deevang/mantritraders/pkg/logger"

	"github.com/gin-gonic/gin"
)

// emailPattern 只做语法层面的邮箱校验
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// InterfaceEnquiryController 定义咨询控制器接口
type InterfaceEnquiryController interface {
	CreateEnquiry()
	GetEnquiries()
	GetStats()
	GetEnquiry()
	UpdateStatus()
	DeleteEnquiry()
}

// EnquiryController 咨询控制器
type EnquiryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEnquiryController 创建一个新的咨询控制器
func NewEnquiryController(ctx *gin.Context, container *container.ServiceContainer) *EnquiryController {
	return &EnquiryController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateEnquiryRequest 提交咨询请求
type CreateEnquiryRequest struct {
	Name      string `json:"name" example:"Rahul Sharma"`
	Email     string `json:"email" example:"rahul@example.com"`
	Phone     string `json:"phone" example:"+91 9876543210"`
	Message   string `json:"message" example:"Need 200 sqft of bathroom tiles"`
	ProductID *uint  `json:"productId"`
}

// UpdateEnquiryStatusRequest 更新咨询状态请求
type UpdateEnquiryStatusRequest struct {
	Status string `json:"status" example:"read"`
}

// HandleEnquiryFunc 返回一个处理咨询请求的Gin处理函数
func HandleEnquiryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEnquiryController(ctx, container)

		switch method {
		case "createEnquiry":
			controller.CreateEnquiry()
		case "getEnquiries":
			controller.GetEnquiries()
		case "getStats":
			controller.GetStats()
		case "getEnquiry":
			controller.GetEnquiry()
		case "updateStatus":
			controller.UpdateStatus()
		case "deleteEnquiry":
			controller.DeleteEnquiry()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// enquiryService 取出咨询服务
func (c *EnquiryController) enquiryService() services.InterfaceEnquiryService {
	return c.Container.GetService("enquiry").(services.InterfaceEnquiryService)
}

// 1. CreateEnquiry 提交咨询
// @Summary      提交咨询
// @Description  公开接口，访客无需登录；可携带可选的商品引用
// @Tags         Enquiry
// @Accept       json
// @Produce      json
// @Param        body body CreateEnquiryRequest true "咨询内容"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Router       /enquiries [post]
func (c *EnquiryController) CreateEnquiry() {
	var req CreateEnquiryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrEnquiryFieldsMissing)
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		response.Fail(c.Ctx, code.ErrEnquiryFieldsMissing)
		return
	}
	if !emailPattern.MatchString(req.Email) {
		response.Fail(c.Ctx, code.ErrEnquiryInvalidEmail)
		return
	}

	enquiry := &models.Enquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		ProductID: req.ProductID,
		Status:    models.EnquiryStatusNew,
		IPAddress: c.Ctx.ClientIP(),
		UserAgent: c.Ctx.Request.UserAgent(),
	}

	if err := c.enquiryService().CreateEnquiry(enquiry); err != nil {
		logger.Error("保存咨询失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to submit enquiry")
		return
	}

	// 只回显访客自己提交的内容，不泄露元数据
	response.Created(c.Ctx, gin.H{
		"message": "Enquiry submitted successfully",
		"enquiry": gin.H{
			"id":      enquiry.ID,
			"name":    enquiry.Name,
			"email":   enquiry.Email,
			"message": enquiry.Message,
		},
	})
}

// 2. GetEnquiries 获取咨询列表
// @Summary      获取咨询列表
// @Description  分页获取咨询记录，可按状态过滤，附带关联商品的名称与分类
// @Tags         Enquiry
// @Produce      json
// @Param        status query string false "状态过滤: new/read/replied/closed"
// @Param        page query int false "页码, 默认为1"
// @Param        limit query int false "每页条数, 默认为10"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Router       /enquiries [get]
// @Security     BearerAuth
func (c *EnquiryController) GetEnquiries() {
	status := c.Ctx.Query("status")
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	enquiries, total, err := c.enquiryService().GetEnquiries(status, page, limit)
	if err != nil {
		logger.Error("查询咨询列表失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to fetch enquiries")
		return
	}
	if enquiries == nil {
		enquiries = []models.Enquiry{}
	}

	response.Success(c.Ctx, gin.H{
		"enquiries":  enquiries,
		"pagination": models.NewPaginationResult(page, limit, total),
	})
}

// 3. GetStats 获取咨询统计
// @Summary      咨询统计概览
// @Description  各状态数量与最近7天新增，供管理面板使用
// @Tags         Enquiry
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Router       /enquiries/stats/overview [get]
// @Security     BearerAuth
func (c *EnquiryController) GetStats() {
	stats, err := c.enquiryService().GetStats()
	if err != nil {
		logger.Error("统计咨询失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to fetch enquiry statistics")
		return
	}

	response.Success(c.Ctx, gin.H{"stats": stats})
}

// 4. GetEnquiry 获取咨询详情
// @Summary      获取咨询详情
// @Tags         Enquiry
// @Produce      json
// @Param        id path int true "咨询ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /enquiries/{id} [get]
// @Security     BearerAuth
func (c *EnquiryController) GetEnquiry() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c.Ctx, code.ErrEnquiryNotFound)
		return
	}

	enquiry, err := c.enquiryService().GetEnquiryByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEnquiryNotFound) {
			response.Fail(c.Ctx, code.ErrEnquiryNotFound)
			return
		}
		logger.Error("查询咨询失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to fetch enquiry")
		return
	}

	response.Success(c.Ctx, gin.H{"enquiry": enquiry})
}

// 5. UpdateStatus 更新咨询状态
// @Summary      更新咨询状态
// @Description  只接受 new/read/replied/closed 四个值，状态之间可任意流转
// @Tags         Enquiry
// @Accept       json
// @Produce      json
// @Param        id path int true "咨询ID"
// @Param        body body UpdateEnquiryStatusRequest true "目标状态"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /enquiries/{id}/status [patch]
// @Security     BearerAuth
func (c *EnquiryController) UpdateStatus() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c.Ctx, code.ErrEnquiryNotFound)
		return
	}

	var req UpdateEnquiryStatusRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrEnquiryInvalidStatus)
		return
	}

	enquiry, err := c.enquiryService().UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEnquiryStatus):
			response.Fail(c.Ctx, code.ErrEnquiryInvalidStatus)
		case errors.Is(err, services.ErrEnquiryNotFound):
			response.Fail(c.Ctx, code.ErrEnquiryNotFound)
		default:
			logger.Error("更新咨询状态失败: %v", err)
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to update enquiry status")
		}
		return
	}

	response.Success(c.Ctx, gin.H{
		"message": "Enquiry status updated successfully",
		"enquiry": enquiry,
	})
}

// 6. DeleteEnquiry 删除咨询
// @Summary      删除咨询
// @Tags         Enquiry
// @Produce      json
// @Param        id path int true "咨询ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /enquiries/{id} [delete]
// @Security     BearerAuth
func (c *EnquiryController) DeleteEnquiry() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c.Ctx, code.ErrEnquiryNotFound)
		return
	}

	if err := c.enquiryService().DeleteEnquiry(uint(id)); err != nil {
		if errors.Is(err, services.ErrEnquiryNotFound) {
			response.Fail(c.Ctx, code.ErrEnquiryNotFound)
			return
		}
		logger.Error("删除咨询失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete enquiry")
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Enquiry deleted successfully"})
}
