package services

import (
	"strings"
	"testing"
	"time"

	"github.com/deevang/mantritraders/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestJWTService(t *testing.T) (*gorm.DB, *config.Config, InterfaceJWTService, InterfaceUserService) {
	t.Helper()
	db := setupTestDB(t)
	cfg := testConfig(t)
	return db, cfg, NewJWTService(cfg, db), NewUserService(db, cfg)
}

func TestGenerateAndResolveToken(t *testing.T) {
	_, _, jwtSvc, userSvc := newTestJWTService(t)

	user, err := userSvc.CreateUser("admin@mantritraders.com", "Admin@123", "admin")
	require.NoError(t, err)

	token, err := jwtSvc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := jwtSvc.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, user.Email, resolved.Email)
	assert.Equal(t, "admin", resolved.Role)
}

func TestResolveTokenRejectsGarbage(t *testing.T) {
	_, _, jwtSvc, userSvc := newTestJWTService(t)

	user, err := userSvc.CreateUser("admin@mantritraders.com", "Admin@123", "admin")
	require.NoError(t, err)

	token, err := jwtSvc.GenerateToken(user)
	require.NoError(t, err)

	t.Run("篡改过的令牌", func(t *testing.T) {
		tampered := token[:len(token)-2] + "xx"
		_, err := jwtSvc.ResolveToken(tampered)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("别的密钥签出来的令牌", func(t *testing.T) {
		otherCfg := testConfig(t)
		otherCfg.JWTSecretKey = "another-secret"
		db := setupTestDB(t)
		otherSvc := NewJWTService(otherCfg, db)

		foreign, err := otherSvc.GenerateToken(user)
		require.NoError(t, err)

		_, err = jwtSvc.ResolveToken(foreign)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("过期令牌", func(t *testing.T) {
		claims := &JWTClaims{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key"))
		require.NoError(t, err)

		_, err = jwtSvc.ResolveToken(expired)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("不是令牌的字符串", func(t *testing.T) {
		_, err := jwtSvc.ResolveToken("not-a-token")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestResolveTokenRejectsDeactivatedAccount(t *testing.T) {
	_, _, jwtSvc, userSvc := newTestJWTService(t)

	user, err := userSvc.CreateUser("admin@mantritraders.com", "Admin@123", "admin")
	require.NoError(t, err)

	token, err := jwtSvc.GenerateToken(user)
	require.NoError(t, err)

	// 签发后停用账户，存量令牌立刻失效
	require.NoError(t, userSvc.SetActive(user.ID, false))

	_, err = jwtSvc.ResolveToken(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin(t *testing.T) {
	_, _, jwtSvc, userSvc := newTestJWTService(t)

	user, err := userSvc.CreateUser("Admin@MantriTraders.com", "Admin@123", "admin")
	require.NoError(t, err)
	// 入库时邮箱已统一为小写
	assert.Equal(t, "admin@mantritraders.com", user.Email)

	t.Run("正确凭证", func(t *testing.T) {
		result, err := jwtSvc.Login("admin@mantritraders.com", "Admin@123")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, user.ID, result.User.ID)
	})

	t.Run("邮箱大小写不敏感", func(t *testing.T) {
		result, err := jwtSvc.Login("ADMIN@mantritraders.COM", "Admin@123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)
	})

	t.Run("密码错误", func(t *testing.T) {
		_, err := jwtSvc.Login("admin@mantritraders.com", "wrong-password")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("账户不存在", func(t *testing.T) {
		_, err := jwtSvc.Login("nobody@mantritraders.com", "Admin@123")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("账户已停用", func(t *testing.T) {
		require.NoError(t, userSvc.SetActive(user.ID, false))
		defer func() { require.NoError(t, userSvc.SetActive(user.ID, true)) }()

		_, err := jwtSvc.Login("admin@mantritraders.com", "Admin@123")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestTokenClaims(t *testing.T) {
	_, cfg, jwtSvc, userSvc := newTestJWTService(t)

	user, err := userSvc.CreateUser("admin@mantritraders.com", "Admin@123", "admin")
	require.NoError(t, err)

	token, err := jwtSvc.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	claims := &JWTClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecretKey), nil
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "mantritraders", claims.Issuer)
	// 有效期7天
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}
