package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deevang/mantritraders/internal/domain/models"
	"github.com/deevang/mantritraders/internal/infrastructure/config"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrAdminExists 系统中已存在管理员时返回，/auth/setup 只允许成功一次
var ErrAdminExists = errors.New("admin user already exists")

// InterfaceUserService 用户服务接口
type InterfaceUserService interface {
	SetupAdmin() (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(email, password, role string) (*models.User, error)
	CheckPassword(password, hash string) bool
	SetActive(id uint, active bool) error
}

// UserService 提供管理员账户相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 CheckPassword 验证密码是否匹配
func (s *UserService) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// 2 GetUserByID 根据ID获取用户
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// 3 GetUserByEmail 根据邮箱获取用户，邮箱统一按小写匹配
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// 4 CreateUser 创建新用户。
// 哈希在这里显式完成，而不是挂在持久化钩子上，明文密码不落库也不进日志。
func (s *UserService) CreateUser(email, password, role string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %v", err)
	}

	user := &models.User{
		Email:    strings.ToLower(email),
		Password: string(hashedPassword),
		Role:     role,
		IsActive: true,
	}

	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// 5 SetupAdmin 一次性初始化管理员账户，已有管理员时拒绝
func (s *UserService) SetupAdmin() (*models.User, error) {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	return s.CreateUser(s.Config.AdminEmail, s.Config.AdminPassword, "admin")
}

// 6 SetActive 启用/停用账户，账户从不物理删除
func (s *UserService) SetActive(id uint, active bool) error {
	result := s.DB.Model(&models.User{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("user not found")
	}
	return nil
}
