package services

import (
	"testing"

	"github.com/deevang/mantritraders/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupAdmin(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig(t)
	svc := NewUserService(db, cfg)

	t.Run("首次初始化成功", func(t *testing.T) {
		admin, err := svc.SetupAdmin()
		require.NoError(t, err)
		assert.Equal(t, cfg.AdminEmail, admin.Email)
		assert.Equal(t, "admin", admin.Role)
		assert.True(t, admin.IsActive)
		// 密码落库的是哈希
		assert.NotEqual(t, cfg.AdminPassword, admin.Password)
		assert.True(t, svc.CheckPassword(cfg.AdminPassword, admin.Password))
	})

	t.Run("已有管理员时拒绝", func(t *testing.T) {
		_, err := svc.SetupAdmin()
		assert.ErrorIs(t, err, ErrAdminExists)

		var count int64
		require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(t))

	user, err := svc.CreateUser("Mixed.Case@Example.COM", "secret123", "admin")
	require.NoError(t, err)

	assert.Equal(t, "mixed.case@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	assert.True(t, svc.CheckPassword("secret123", user.Password))
	assert.False(t, svc.CheckPassword("wrong", user.Password))

	t.Run("按邮箱查找同样大小写不敏感", func(t *testing.T) {
		found, err := svc.GetUserByEmail("MIXED.case@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("邮箱唯一", func(t *testing.T) {
		_, err := svc.CreateUser("mixed.case@example.com", "other", "admin")
		assert.Error(t, err)
	})
}

func TestSetActive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db, testConfig(t))

	user, err := svc.CreateUser("admin@mantritraders.com", "Admin@123", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.SetActive(user.ID, false))

	stored, err := svc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	require.NoError(t, svc.SetActive(user.ID, true))
	stored, err = svc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)

	assert.Error(t, svc.SetActive(99999, false))
}
