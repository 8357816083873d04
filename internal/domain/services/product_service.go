package services

import (
	"errors"
	"time"

	"github.com/deevang/mantritraders/internal/domain/models"
	"github.com/deevang/mantritraders/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrProductNotFound 商品不存在
var ErrProductNotFound = errors.New("product not found")

// categoriesCacheKey 分类列表的缓存键
const categoriesCacheKey = "products:categories"

// categoriesCacheTTL 分类缓存有效期
const categoriesCacheTTL = time.Minute

// ProductFilter 公开目录的查询条件
type ProductFilter struct {
	Category string // 分类精确匹配
	Search   string // 名称/描述/分类模糊搜索
	Featured bool   // 只看推荐
}

// UpdateProductInput 部分更新输入，nil 字段保持原值不动
type UpdateProductInput struct {
	Name        *string
	Category    *string
	Description *string
	Size        *string
	Image       *string
	Images      *[]string
	Price       *float64
	Featured    *bool
	IsActive    *bool
}

// InterfaceProductService 商品服务接口
type InterfaceProductService interface {
	GetProducts(filter ProductFilter) ([]models.Product, error)
	GetCategories() ([]string, error)
	GetProductByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id uint, input UpdateProductInput) (*models.Product, error)
	DeleteProduct(id uint) error
}

// ProductService 提供商品目录相关的服务
type ProductService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceRedisService // 可为 nil，缓存纯属锦上添花
}

// NewProductService 创建一个新的商品服务
func NewProductService(db *gorm.DB, cfg *config.Config, cache InterfaceRedisService) InterfaceProductService {
	return &ProductService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// 1 GetProducts 获取公开商品列表，只返回 active 的记录，按创建时间倒序
func (s *ProductService) GetProducts(filter ProductFilter) ([]models.Product, error) {
	var products []models.Product

	query := s.DB.Model(&models.Product{}).Where("is_active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Featured {
		query = query.Where("featured = ?", true)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ? OR category LIKE ?", like, like, like)
	}

	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// 2 GetCategories 获取所有 active 商品的去重分类列表，带一层可选的Redis缓存
func (s *ProductService) GetCategories() ([]string, error) {
	var categories []string

	if s.Cache != nil {
		if err := s.Cache.Get(categoriesCacheKey, &categories); err == nil {
			return categories, nil
		}
	}

	if err := s.DB.Model(&models.Product{}).
		Where("is_active = ?", true).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}

	if s.Cache != nil {
		// 缓存失败不影响主流程
		_ = s.Cache.Set(categoriesCacheKey, categories, categoriesCacheTTL)
	}
	return categories, nil
}

// 3 GetProductByID 根据ID获取商品
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// 4 CreateProduct 创建新商品，附加图片列表先剔除与主图重复的项
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.DedupImages()
	if product.Images == nil {
		product.Images = []string{}
	}

	if err := s.DB.Create(product).Error; err != nil {
		return err
	}
	s.invalidateCategories()
	return nil
}

// 5 UpdateProduct 部分更新商品，缺席字段保持原值。
// 图片列表更新后重新套用"附加图不含主图"的约束。
func (s *ProductService) UpdateProduct(id uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		product.Name = *input.Name
	}
	if input.Category != nil && *input.Category != "" {
		product.Category = *input.Category
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Size != nil {
		product.Size = *input.Size
	}
	if input.Image != nil && *input.Image != "" {
		product.Image = *input.Image
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	product.DedupImages()

	// Save 写整行，配合上面的指针合并实现 last-write-wins
	if err := s.DB.Save(product).Error; err != nil {
		return nil, err
	}
	s.invalidateCategories()
	return product, nil
}

// 6 DeleteProduct 物理删除商品。
// 指向该商品的咨询记录保留悬空引用，不做级联处理。
func (s *ProductService) DeleteProduct(id uint) error {
	result := s.DB.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	s.invalidateCategories()
	return nil
}

// invalidateCategories 商品写操作后丢弃分类缓存
func (s *ProductService) invalidateCategories() {
	if s.Cache != nil {
		_ = s.Cache.Delete(categoriesCacheKey)
	}
}
