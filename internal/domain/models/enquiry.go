package models

// 咨询状态枚举，初始为 new，状态之间可任意流转
const (
	EnquiryStatusNew     = "new"
	EnquiryStatusRead    = "read"
	EnquiryStatusReplied = "replied"
	EnquiryStatusClosed  = "closed"
)

// ValidEnquiryStatus 判断给定状态是否在枚举集合内
func ValidEnquiryStatus(status string) bool {
	switch status {
	case EnquiryStatusNew, EnquiryStatusRead, EnquiryStatusReplied, EnquiryStatusClosed:
		return true
	}
	return false
}

// Enquiry represents a customer contact/interest submission
type Enquiry struct {
	BaseModel
	Name      string   `gorm:"type:varchar(100);not null" json:"name"`
	Email     string   `gorm:"type:varchar(100);not null" json:"email"`
	Phone     string   `gorm:"type:varchar(20)" json:"phone"`
	Message   string   `gorm:"type:text;not null" json:"message"`
	ProductID *uint    `json:"productId"`                            // 可空的弱引用，删除商品不级联
	Product   *Product `gorm:"foreignKey:ProductID" json:"product"`  // 仅管理端查询时填充
	Status    string   `gorm:"type:varchar(20);default:'new';index" json:"status"`
	IPAddress string   `gorm:"type:varchar(45)" json:"ipAddress"`
	UserAgent string   `gorm:"type:varchar(500)" json:"userAgent"`
}
