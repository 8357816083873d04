package controllers

import (
	"errors"
	"strconv"

	"github.com/deevang/mantritraders/internal/domain/models"
	"github.com/deevang/mantritraders/internal/domain/services"
	"github.com/deevang/mantritraders/internal/domain/services/container"
	"github.com/deevang/mantritraders/internal/error/code"
	"github.com/deevang/mantritraders/internal/error/response"
	"github.com/deevang/mantritraders/pkg/logger"

	"github.com/gin-gonic/gin"
)

// InterfaceProductController 定义商品控制器接口
type InterfaceProductController interface {
	GetProducts()
	GetCategories()
	GetProduct()
	CreateProduct()
	UpdateProduct()
	DeleteProduct()
	UploadImage()
}

// ProductController 商品控制器
type ProductController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewProductController 创建一个新的商品控制器
func NewProductController(ctx *gin.Context, container *container.ServiceContainer) *ProductController {
	return &ProductController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name        string   `json:"name" example:"Carrara White Marble"`
	Category    string   `json:"category" example:"Bathroom"`
	Description string   `json:"description" example:"Premium glazed vitrified tile"`
	Size        string   `json:"size" example:"600x600mm"`
	Image       string   `json:"image" example:"http://localhost:5000/uploads/abc.jpg"`
	Images      []string `json:"images"`
	Price       float64  `json:"price" example:"450"`
	Featured    bool     `json:"featured"`
}

// UpdateProductRequest 更新商品请求，缺席字段保持原值
type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Size        *string   `json:"size"`
	Image       *string   `json:"image"`
	Images      *[]string `json:"images"`
	Price       *float64  `json:"price"`
	Featured    *bool     `json:"featured"`
	IsActive    *bool     `json:"isActive"`
}

// HandleProductFunc 返回一个处理商品请求的Gin处理函数
func HandleProductFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewProductController(ctx, container)

		switch method {
		case "getProducts":
			controller.GetProducts()
		case "getCategories":
			controller.GetCategories()
		case "getProduct":
			controller.GetProduct()
		case "createProduct":
			controller.CreateProduct()
		case "updateProduct":
			controller.UpdateProduct()
		case "deleteProduct":
			controller.DeleteProduct()
		case "uploadImage":
			controller.UploadImage()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

// productService 取出商品服务
func (c *ProductController) productService() services.InterfaceProductService {
	return c.Container.GetService("product").(services.InterfaceProductService)
}

// 1. GetProducts 获取公开商品列表
// @Summary      获取商品列表
// @Description  公开接口，只返回上架商品，支持分类、推荐与关键字过滤
// @Tags         Product
// @Produce      json
// @Param        category query string false "分类精确匹配"
// @Param        search query string false "名称/描述/分类关键字"
// @Param        featured query string false "featured=true 只看推荐"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  response.ErrorResponse
// @Router       /products [get]
func (c *ProductController) GetProducts() {
	filter := services.ProductFilter{
		Category: c.Ctx.Query("category"),
		Search:   c.Ctx.Query("search"),
		Featured: c.Ctx.Query("featured") == "true",
	}

	products, err := c.productService().GetProducts(filter)
	if err != nil {
		logger.Error("查询商品列表失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to fetch products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	response.Success(c.Ctx, gin.H{"products": products})
}

// 2. GetCategories 获取分类列表
// @Summary      获取商品分类
// @Description  公开接口，返回所有上架商品的去重分类
// @Tags         Product
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  response.ErrorResponse
// @Router       /products/categories/list [get]
func (c *ProductController) GetCategories() {
	categories, err := c.productService().GetCategories()
	if err != nil {
		logger.Error("查询商品分类失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to fetch categories")
		return
	}
	if categories == nil {
		categories = []string{}
	}

	response.Success(c.Ctx, gin.H{"categories": categories})
}

// 3. GetProduct 获取商品详情
// @Summary      获取商品详情
// @Description  公开接口，下架或不存在的商品一律404
// @Tags         Product
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /products/{id} [get]
func (c *ProductController) GetProduct() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c.Ctx, code.ErrProductNotFound)
		return
	}

	product, err := c.productService().GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.Fail(c.Ctx, code.ErrProductNotFound)
			return
		}
		logger.Error("查询商品失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to fetch product")
		return
	}

	// 公开读取口径：下架商品视同不存在
	if !product.IsActive {
		response.Fail(c.Ctx, code.ErrProductNotFound)
		return
	}

	response.Success(c.Ctx, gin.H{"product": product})
}

// 4. CreateProduct 创建商品
// @Summary      创建商品
// @Description  名称、分类、主图必填；附加图片会剔除与主图重复的项
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        body body CreateProductRequest true "商品信息"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /products [post]
// @Security     BearerAuth
func (c *ProductController) CreateProduct() {
	var req CreateProductRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	if req.Name == "" || req.Category == "" || req.Image == "" {
		response.Fail(c.Ctx, code.ErrProductFieldsMissing)
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Size:        req.Size,
		Image:       req.Image,
		Images:      req.Images,
		Price:       req.Price,
		Featured:    req.Featured,
		IsActive:    true,
	}

	if err := c.productService().CreateProduct(product); err != nil {
		logger.Error("创建商品失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to create product")
		return
	}

	response.Created(c.Ctx, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// 5. UpdateProduct 更新商品
// @Summary      更新商品
// @Description  部分更新：请求中缺席的字段保持原值
// @Tags         Product
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        body body UpdateProductRequest true "要更新的字段"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /products/{id} [put]
// @Security     BearerAuth
func (c *ProductController) UpdateProduct() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c.Ctx, code.ErrProductNotFound)
		return
	}

	var req UpdateProductRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	input := services.UpdateProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Size:        req.Size,
		Image:       req.Image,
		Images:      req.Images,
		Price:       req.Price,
		Featured:    req.Featured,
		IsActive:    req.IsActive,
	}

	product, err := c.productService().UpdateProduct(uint(id), input)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.Fail(c.Ctx, code.ErrProductNotFound)
			return
		}
		logger.Error("更新商品失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to update product")
		return
	}

	response.Success(c.Ctx, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// 6. DeleteProduct 删除商品
// @Summary      删除商品
// @Description  物理删除；引用该商品的咨询记录保持原样
// @Tags         Product
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /products/{id} [delete]
// @Security     BearerAuth
func (c *ProductController) DeleteProduct() {
	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c.Ctx, code.ErrProductNotFound)
		return
	}

	if err := c.productService().DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.Fail(c.Ctx, code.ErrProductNotFound)
			return
		}
		logger.Error("删除商品失败: %v", err)
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Failed to delete product")
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Product deleted successfully"})
}

// 7. UploadImage 上传商品图片
// @Summary      上传商品图片
// @Description  multipart表单字段image，5MB上限，保存后经 /uploads 静态路径访问
// @Tags         Product
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "图片文件"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /products/upload-image [post]
// @Security     BearerAuth
func (c *ProductController) UploadImage() {
	file, err := c.Ctx.FormFile("image")
	if err != nil {
		response.Fail(c.Ctx, code.ErrUploadNoFile)
		return
	}

	uploadService := c.Container.GetService("upload").(services.InterfaceUploadService)
	filename, err := uploadService.SaveImage(file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidImageType):
			response.Fail(c.Ctx, code.ErrUploadInvalidType)
		case errors.Is(err, services.ErrImageTooLarge):
			response.Fail(c.Ctx, code.ErrUploadTooLarge)
		default:
			logger.Error("保存上传图片失败: %v", err)
			response.FailWithMessage(c.Ctx, code.ErrUnknown, "Failed to upload image")
		}
		return
	}

	response.Success(c.Ctx, gin.H{
		"message":  "Image uploaded successfully",
		"imageUrl": uploadService.ImageURL(filename),
		"filename": filename,
	})
}
