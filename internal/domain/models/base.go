package models

import "time"

// BaseModel 所有模型共用的基础字段
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PaginationResult 分页结果，total 为过滤条件命中的总页数
type PaginationResult struct {
	Current        int   `json:"current"`
	Total          int64 `json:"total"`
	TotalEnquiries int64 `json:"totalEnquiries"`
}

// NewPaginationResult 创建一个新的分页结果对象
func NewPaginationResult(current, limit int, totalRecords int64) PaginationResult {
	totalPages := (totalRecords + int64(limit) - 1) / int64(limit)
	return PaginationResult{
		Current:        current,
		Total:          totalPages,
		TotalEnquiries: totalRecords,
	}
}
