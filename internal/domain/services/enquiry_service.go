package services

import (
	"errors"
	"time"

	"github.com/deevang/mantritraders/internal/domain/models"
	"github.com/deevang/mantritraders/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrEnquiryNotFound 咨询记录不存在
var ErrEnquiryNotFound = errors.New("enquiry not found")

// ErrInvalidEnquiryStatus 状态值不在枚举集合内
var ErrInvalidEnquiryStatus = errors.New("invalid enquiry status")

// EnquiryStats 管理面板的咨询统计
type EnquiryStats struct {
	Total   int64 `json:"total"`
	New     int64 `json:"new"`
	Read    int64 `json:"read"`
	Replied int64 `json:"replied"`
	Closed  int64 `json:"closed"`
	Recent  int64 `json:"recent"` // 最近7天
}

// InterfaceEnquiryService 咨询服务接口
type InterfaceEnquiryService interface {
	CreateEnquiry(enquiry *models.Enquiry) error
	GetEnquiries(status string, page, limit int) ([]models.Enquiry, int64, error)
	GetEnquiryByID(id uint) (*models.Enquiry, error)
	UpdateStatus(id uint, status string) (*models.Enquiry, error)
	DeleteEnquiry(id uint) error
	GetStats() (*EnquiryStats, error)
}

// EnquiryService 提供客户咨询相关的服务
type EnquiryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEnquiryService 创建一个新的咨询服务
func NewEnquiryService(db *gorm.DB, cfg *config.Config) InterfaceEnquiryService {
	return &EnquiryService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CreateEnquiry 创建咨询记录，初始状态为 new
func (s *EnquiryService) CreateEnquiry(enquiry *models.Enquiry) error {
	if enquiry.Status == "" {
		enquiry.Status = models.EnquiryStatusNew
	}
	return s.DB.Create(enquiry).Error
}

// 2 GetEnquiries 分页获取咨询列表，可按状态过滤，按创建时间倒序。
// 关联商品只带回名称与分类，商品已删除时该字段为空。
func (s *EnquiryService) GetEnquiries(status string, page, limit int) ([]models.Enquiry, int64, error) {
	var enquiries []models.Enquiry
	var total int64

	query := s.DB.Model(&models.Enquiry{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	// 总数按过滤条件统计，供调用方计算页数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Preload("Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "category")
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&enquiries).Error; err != nil {
		return nil, 0, err
	}

	return enquiries, total, nil
}

// 3 GetEnquiryByID 根据ID获取咨询详情，关联商品多带一张主图
func (s *EnquiryService) GetEnquiryByID(id uint) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	if err := s.DB.
		Preload("Product", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "category", "image")
		}).
		First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

// 4 UpdateStatus 更新咨询状态。
// 只接受枚举内的四个值，状态之间可任意流转；非法值不落库。
func (s *EnquiryService) UpdateStatus(id uint, status string) (*models.Enquiry, error) {
	if !models.ValidEnquiryStatus(status) {
		return nil, ErrInvalidEnquiryStatus
	}

	enquiry, err := s.GetEnquiryByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(enquiry).Update("status", status).Error; err != nil {
		return nil, err
	}
	enquiry.Status = status
	return enquiry, nil
}

// 5 DeleteEnquiry 物理删除咨询记录
func (s *EnquiryService) DeleteEnquiry(id uint) error {
	result := s.DB.Delete(&models.Enquiry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnquiryNotFound
	}
	return nil
}

// 6 GetStats 统计各状态数量与最近7天新增
func (s *EnquiryService) GetStats() (*EnquiryStats, error) {
	stats := &EnquiryStats{}

	if err := s.DB.Model(&models.Enquiry{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	statusCounts := []struct {
		status string
		dest   *int64
	}{
		{models.EnquiryStatusNew, &stats.New},
		{models.EnquiryStatusRead, &stats.Read},
		{models.EnquiryStatusReplied, &stats.Replied},
		{models.EnquiryStatusClosed, &stats.Closed},
	}
	for _, sc := range statusCounts {
		if err := s.DB.Model(&models.Enquiry{}).Where("status = ?", sc.status).Count(sc.dest).Error; err != nil {
			return nil, err
		}
	}

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	if err := s.DB.Model(&models.Enquiry{}).Where("created_at >= ?", sevenDaysAgo).Count(&stats.Recent).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
