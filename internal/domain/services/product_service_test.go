package services

import (
	"testing"

	"github.com/deevang/mantritraders/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProductService(t *testing.T) (*ProductService, InterfaceProductService) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewProductService(db, testConfig(t), nil)
	return svc.(*ProductService), svc
}

func seedProduct(t *testing.T, svc InterfaceProductService, p *models.Product) *models.Product {
	t.Helper()
	if p.Image == "" {
		p.Image = "http://localhost:5000/uploads/main.jpg"
	}
	require.NoError(t, svc.CreateProduct(p))
	return p
}

func TestCreateProduct(t *testing.T) {
	_, svc := newTestProductService(t)

	t.Run("创建时剔除与主图重复的附加图", func(t *testing.T) {
		p := &models.Product{
			Name:     "Carrara White Marble",
			Category: "Bathroom",
			Image:    "main.jpg",
			Images:   []string{"a.jpg", "main.jpg", ""},
			IsActive: true,
		}
		require.NoError(t, svc.CreateProduct(p))
		require.NotZero(t, p.ID)

		stored, err := svc.GetProductByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.jpg"}, stored.Images)
	})

	t.Run("附加图缺席时落库为空列表", func(t *testing.T) {
		p := &models.Product{
			Name:     "Beige Travertine",
			Category: "Living Room",
			Image:    "main.jpg",
			IsActive: true,
		}
		require.NoError(t, svc.CreateProduct(p))

		stored, err := svc.GetProductByID(p.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored.Images)
		assert.Empty(t, stored.Images)
	})
}

func TestGetProducts(t *testing.T) {
	_, svc := newTestProductService(t)

	seedProduct(t, svc, &models.Product{Name: "Glossy White Tile", Category: "Bathroom", Featured: true, IsActive: true})
	seedProduct(t, svc, &models.Product{Name: "Oak Wood Plank", Category: "Flooring", Description: "engineered oak flooring", IsActive: true})
	seedProduct(t, svc, &models.Product{Name: "Discontinued Tile", Category: "Bathroom", IsActive: false})

	t.Run("只返回上架商品", func(t *testing.T) {
		products, err := svc.GetProducts(ProductFilter{})
		require.NoError(t, err)
		require.Len(t, products, 2)
		for _, p := range products {
			assert.True(t, p.IsActive)
		}
	})

	t.Run("按分类精确过滤", func(t *testing.T) {
		products, err := svc.GetProducts(ProductFilter{Category: "Bathroom"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Glossy White Tile", products[0].Name)
	})

	t.Run("只看推荐", func(t *testing.T) {
		products, err := svc.GetProducts(ProductFilter{Featured: true})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Glossy White Tile", products[0].Name)
	})

	t.Run("关键字搜索覆盖名称和描述", func(t *testing.T) {
		products, err := svc.GetProducts(ProductFilter{Search: "oak"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Oak Wood Plank", products[0].Name)
	})

	t.Run("没有命中时返回空列表而不是错误", func(t *testing.T) {
		products, err := svc.GetProducts(ProductFilter{Search: "granite"})
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestGetCategories(t *testing.T) {
	_, svc := newTestProductService(t)

	seedProduct(t, svc, &models.Product{Name: "P1", Category: "Flooring", IsActive: true})
	seedProduct(t, svc, &models.Product{Name: "P2", Category: "Bathroom", IsActive: true})
	seedProduct(t, svc, &models.Product{Name: "P3", Category: "Bathroom", IsActive: true})
	seedProduct(t, svc, &models.Product{Name: "P4", Category: "Kitchen", IsActive: false})

	categories, err := svc.GetCategories()
	require.NoError(t, err)

	// 去重、排序，且不包含下架商品的分类
	assert.Equal(t, []string{"Bathroom", "Flooring"}, categories)
}

func TestUpdateProduct(t *testing.T) {
	_, svc := newTestProductService(t)

	base := seedProduct(t, svc, &models.Product{
		Name:        "Original Name",
		Category:    "Bathroom",
		Description: "original description",
		Size:        "600x600mm",
		Image:       "main.jpg",
		Price:       450,
		IsActive:    true,
	})

	t.Run("缺席字段保持原值", func(t *testing.T) {
		name := "Renamed Tile"
		updated, err := svc.UpdateProduct(base.ID, UpdateProductInput{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, "Renamed Tile", updated.Name)
		assert.Equal(t, "Bathroom", updated.Category)
		assert.Equal(t, "original description", updated.Description)
		assert.Equal(t, 450.0, updated.Price)
	})

	t.Run("名称传空字符串不生效", func(t *testing.T) {
		empty := ""
		updated, err := svc.UpdateProduct(base.ID, UpdateProductInput{Name: &empty})
		require.NoError(t, err)
		assert.Equal(t, "Renamed Tile", updated.Name)
	})

	t.Run("描述允许显式清空", func(t *testing.T) {
		empty := ""
		updated, err := svc.UpdateProduct(base.ID, UpdateProductInput{Description: &empty})
		require.NoError(t, err)
		assert.Equal(t, "", updated.Description)
	})

	t.Run("更新图片列表后重新剔除主图重复项", func(t *testing.T) {
		images := []string{"extra.jpg", "main.jpg"}
		updated, err := svc.UpdateProduct(base.ID, UpdateProductInput{Images: &images})
		require.NoError(t, err)
		assert.Equal(t, []string{"extra.jpg"}, updated.Images)
	})

	t.Run("下架商品", func(t *testing.T) {
		inactive := false
		updated, err := svc.UpdateProduct(base.ID, UpdateProductInput{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)

		// 下架后从公开列表消失，但直接按ID还能取到
		products, err := svc.GetProducts(ProductFilter{})
		require.NoError(t, err)
		assert.Empty(t, products)

		stored, err := svc.GetProductByID(base.ID)
		require.NoError(t, err)
		assert.False(t, stored.IsActive)
	})

	t.Run("更新不存在的商品", func(t *testing.T) {
		name := "whatever"
		_, err := svc.UpdateProduct(99999, UpdateProductInput{Name: &name})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	_, svc := newTestProductService(t)

	p := seedProduct(t, svc, &models.Product{Name: "Doomed Tile", Category: "Bathroom", IsActive: true})

	require.NoError(t, svc.DeleteProduct(p.ID))

	_, err := svc.GetProductByID(p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// 重复删除返回未找到
	assert.ErrorIs(t, svc.DeleteProduct(p.ID), ErrProductNotFound)
}
