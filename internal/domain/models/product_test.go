package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupImages(t *testing.T) {
	t.Run("剔除与主图重复的附加图", func(t *testing.T) {
		p := &Product{
			Image:  "main.jpg",
			Images: []string{"a.jpg", "main.jpg", "b.jpg", "main.jpg"},
		}
		p.DedupImages()
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
	})

	t.Run("剔除空字符串", func(t *testing.T) {
		p := &Product{
			Image:  "main.jpg",
			Images: []string{"", "a.jpg", ""},
		}
		p.DedupImages()
		assert.Equal(t, []string{"a.jpg"}, p.Images)
	})

	t.Run("附加图最多保留5张", func(t *testing.T) {
		p := &Product{
			Image:  "main.jpg",
			Images: []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg", "6.jpg", "7.jpg"},
		}
		p.DedupImages()
		assert.Len(t, p.Images, MaxAdditionalImages)
		assert.Equal(t, []string{"1.jpg", "2.jpg", "3.jpg", "4.jpg", "5.jpg"}, p.Images)
	})

	t.Run("空列表保持为空", func(t *testing.T) {
		p := &Product{Image: "main.jpg"}
		p.DedupImages()
		assert.Empty(t, p.Images)
	})
}

func TestValidEnquiryStatus(t *testing.T) {
	for _, status := range []string{EnquiryStatusNew, EnquiryStatusRead, EnquiryStatusReplied, EnquiryStatusClosed} {
		assert.True(t, ValidEnquiryStatus(status), status)
	}

	for _, status := range []string{"", "archived", "NEW", "pending"} {
		assert.False(t, ValidEnquiryStatus(status), status)
	}
}

func TestNewPaginationResult(t *testing.T) {
	t.Run("整页", func(t *testing.T) {
		p := NewPaginationResult(1, 10, 30)
		assert.Equal(t, 1, p.Current)
		assert.Equal(t, int64(3), p.Total)
		assert.Equal(t, int64(30), p.TotalEnquiries)
	})

	t.Run("末页不足一页时向上取整", func(t *testing.T) {
		p := NewPaginationResult(2, 10, 31)
		assert.Equal(t, int64(4), p.Total)
	})

	t.Run("没有记录时页数为0", func(t *testing.T) {
		p := NewPaginationResult(1, 10, 0)
		assert.Equal(t, int64(0), p.Total)
	})
}
