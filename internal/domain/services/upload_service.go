package services

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/deevang/mantritraders/internal/infrastructure/config"

	"github.com/google/uuid"
)

// MaxImageSize 单张图片大小上限 (5MB)
const MaxImageSize = 5 << 20

// ErrInvalidImageType 不在白名单内的文件类型
var ErrInvalidImageType = errors.New("invalid image type")

// ErrImageTooLarge 图片超出大小限制
var ErrImageTooLarge = errors.New("image too large")

// allowedImageExts 允许的图片扩展名
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// InterfaceUploadService 图片上传服务接口
type InterfaceUploadService interface {
	SaveImage(file *multipart.FileHeader) (string, error)
	ImageURL(filename string) string
}

// UploadService 将上传的图片落到本地文件系统，经 /uploads 静态路径回源
type UploadService struct {
	Config *config.Config
}

// NewUploadService 创建一个新的上传服务
func NewUploadService(cfg *config.Config) InterfaceUploadService {
	return &UploadService{Config: cfg}
}

// 1 SaveImage 校验并保存图片，返回生成的文件名。
// 文件名用UUID重写，不信任客户端给的名字。
func (s *UploadService) SaveImage(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", ErrInvalidImageType
	}
	if file.Size > MaxImageSize {
		return "", ErrImageTooLarge
	}

	if err := os.MkdirAll(s.Config.UploadDir, 0755); err != nil {
		return "", err
	}

	filename := uuid.New().String() + ext
	dstPath := filepath.Join(s.Config.UploadDir, filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// 写失败时不留半截文件
		os.Remove(dstPath)
		return "", err
	}

	return filename, nil
}

// 2 ImageURL 拼出图片的公开访问地址
func (s *UploadService) ImageURL(filename string) string {
	return strings.TrimRight(s.Config.PublicBaseURL, "/") + "/uploads/" + filename
}
