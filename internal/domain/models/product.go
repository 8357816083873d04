package models

// MaxAdditionalImages 附加图片数量上限
const MaxAdditionalImages = 5

// Product represents a catalog item (tiles, flooring etc.)
type Product struct {
	BaseModel
	Name        string   `gorm:"type:varchar(200);not null" json:"name"`
	Category    string   `gorm:"type:varchar(100);not null;index" json:"category"` // 自由文本分类，不是外键
	Size        string   `gorm:"type:varchar(100)" json:"size"`
	Description string   `gorm:"type:text" json:"description"`
	Image       string   `gorm:"type:varchar(500);not null" json:"image"`    // 主图
	Images      []string `gorm:"serializer:json" json:"images"`              // 附加图片，不允许与主图重复
	Price       float64  `gorm:"default:0" json:"price"`                     // 当前不对公开目录展示
	Featured    bool     `gorm:"default:false" json:"featured"`
	IsActive    bool     `gorm:"default:true" json:"isActive"` // 软删除标记，公开读取只看 active
}

// DedupImages 从附加图片列表中剔除空值与主图重复项，并截断到上限
func (p *Product) DedupImages() {
	if p.Images == nil {
		return
	}
	filtered := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img == "" || img == p.Image {
			continue
		}
		filtered = append(filtered, img)
	}
	if len(filtered) > MaxAdditionalImages {
		filtered = filtered[:MaxAdditionalImages]
	}
	p.Images = filtered
}
