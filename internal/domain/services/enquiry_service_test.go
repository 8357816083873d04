package services

import (
	"testing"

	"github.com/deevang/mantritraders/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestEnquiryService(t *testing.T) (*gorm.DB, InterfaceEnquiryService) {
	t.Helper()
	db := setupTestDB(t)
	return db, NewEnquiryService(db, testConfig(t))
}

func seedEnquiry(t *testing.T, svc InterfaceEnquiryService, e *models.Enquiry) *models.Enquiry {
	t.Helper()
	if e.Name == "" {
		e.Name = "Rahul Sharma"
	}
	if e.Email == "" {
		e.Email = "rahul@example.com"
	}
	if e.Message == "" {
		e.Message = "Need 200 sqft of bathroom tiles"
	}
	require.NoError(t, svc.CreateEnquiry(e))
	return e
}

func TestCreateEnquiry(t *testing.T) {
	_, svc := newTestEnquiryService(t)

	e := seedEnquiry(t, svc, &models.Enquiry{})
	require.NotZero(t, e.ID)
	assert.Equal(t, models.EnquiryStatusNew, e.Status)
}

func TestGetEnquiries(t *testing.T) {
	db, svc := newTestEnquiryService(t)

	product := &models.Product{Name: "Glossy White Tile", Category: "Bathroom", Image: "main.jpg", IsActive: true}
	require.NoError(t, db.Create(product).Error)

	for i := 0; i < 12; i++ {
		seedEnquiry(t, svc, &models.Enquiry{ProductID: &product.ID})
	}
	read := seedEnquiry(t, svc, &models.Enquiry{})
	_, err := svc.UpdateStatus(read.ID, models.EnquiryStatusRead)
	require.NoError(t, err)

	t.Run("分页", func(t *testing.T) {
		enquiries, total, err := svc.GetEnquiries("", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(13), total)
		assert.Len(t, enquiries, 10)

		enquiries, _, err = svc.GetEnquiries("", 2, 10)
		require.NoError(t, err)
		assert.Len(t, enquiries, 3)
	})

	t.Run("按状态过滤时总数同步过滤", func(t *testing.T) {
		enquiries, total, err := svc.GetEnquiries(models.EnquiryStatusRead, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, enquiries, 1)
		assert.Equal(t, read.ID, enquiries[0].ID)
	})

	t.Run("带回关联商品的名称与分类", func(t *testing.T) {
		enquiries, _, err := svc.GetEnquiries("", 2, 10)
		require.NoError(t, err)

		var withProduct *models.Enquiry
		for i := range enquiries {
			if enquiries[i].ProductID != nil {
				withProduct = &enquiries[i]
				break
			}
		}
		require.NotNil(t, withProduct)
		require.NotNil(t, withProduct.Product)
		assert.Equal(t, "Glossy White Tile", withProduct.Product.Name)
		assert.Equal(t, "Bathroom", withProduct.Product.Category)
	})
}

func TestEnquirySurvivesProductDeletion(t *testing.T) {
	db, svc := newTestEnquiryService(t)

	product := &models.Product{Name: "Doomed Tile", Category: "Bathroom", Image: "main.jpg", IsActive: true}
	require.NoError(t, db.Create(product).Error)
	e := seedEnquiry(t, svc, &models.Enquiry{ProductID: &product.ID})

	// 删除商品后咨询保留悬空引用，查询不报错
	require.NoError(t, db.Delete(&models.Product{}, product.ID).Error)

	stored, err := svc.GetEnquiryByID(e.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ProductID)
	assert.Equal(t, product.ID, *stored.ProductID)
	assert.Nil(t, stored.Product)
}

func TestUpdateEnquiryStatus(t *testing.T) {
	_, svc := newTestEnquiryService(t)

	e := seedEnquiry(t, svc, &models.Enquiry{})

	t.Run("合法状态之间任意流转", func(t *testing.T) {
		for _, status := range []string{
			models.EnquiryStatusRead,
			models.EnquiryStatusClosed,
			models.EnquiryStatusReplied,
			models.EnquiryStatusNew,
		} {
			updated, err := svc.UpdateStatus(e.ID, status)
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		}
	})

	t.Run("非法状态值不落库", func(t *testing.T) {
		_, err := svc.UpdateStatus(e.ID, "archived")
		assert.ErrorIs(t, err, ErrInvalidEnquiryStatus)

		stored, err := svc.GetEnquiryByID(e.ID)
		require.NoError(t, err)
		assert.Equal(t, models.EnquiryStatusNew, stored.Status)
	})

	t.Run("记录不存在", func(t *testing.T) {
		_, err := svc.UpdateStatus(99999, models.EnquiryStatusRead)
		assert.ErrorIs(t, err, ErrEnquiryNotFound)
	})
}

func TestDeleteEnquiry(t *testing.T) {
	_, svc := newTestEnquiryService(t)

	e := seedEnquiry(t, svc, &models.Enquiry{})
	require.NoError(t, svc.DeleteEnquiry(e.ID))

	_, err := svc.GetEnquiryByID(e.ID)
	assert.ErrorIs(t, err, ErrEnquiryNotFound)

	assert.ErrorIs(t, svc.DeleteEnquiry(e.ID), ErrEnquiryNotFound)
}

func TestGetStats(t *testing.T) {
	_, svc := newTestEnquiryService(t)

	seedEnquiry(t, svc, &models.Enquiry{})
	seedEnquiry(t, svc, &models.Enquiry{})
	replied := seedEnquiry(t, svc, &models.Enquiry{})
	closed := seedEnquiry(t, svc, &models.Enquiry{})

	_, err := svc.UpdateStatus(replied.ID, models.EnquiryStatusReplied)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(closed.ID, models.EnquiryStatusClosed)
	require.NoError(t, err)

	stats, err := svc.GetStats()
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(2), stats.New)
	assert.Equal(t, int64(0), stats.Read)
	assert.Equal(t, int64(1), stats.Replied)
	assert.Equal(t, int64(1), stats.Closed)
	// 刚创建的记录都落在最近7天窗口内
	assert.Equal(t, int64(4), stats.Recent)
}
