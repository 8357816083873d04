package models

// User represents the admin account of the management panel
type User struct {
	BaseModel
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"` // 邮箱统一转小写存储
	Password string `gorm:"type:varchar(100);not null" json:"-"`                 // 仅存 bcrypt 哈希，不出现在 JSON
	Role     string `gorm:"type:varchar(20);default:'admin'" json:"role"`        // 当前只有 admin 一种角色
	IsActive bool   `gorm:"default:true" json:"isActive"`
}
