package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/campus-bookstore/pkg/errors"
)

// TestManager_GenerateAndParse 测试Token生成与解析往返
func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "zhangsan", "Customer")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "zhangsan", claims.Username)
	assert.Equal(t, "Customer", claims.Role)
	assert.Equal(t, "campus-bookstore", claims.Issuer)
}

// TestManager_ParseToken_Expired 测试过期Token
func TestManager_ParseToken_Expired(t *testing.T) {
	// 负数有效期,签发即过期
	m := NewManager("test-secret", -time.Minute, time.Hour)

	pair, err := m.GenerateToken(1, "zhangsan", "Customer")
	require.NoError(t, err)

	_, err = m.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

// TestManager_ParseToken_WrongSecret 测试密钥不匹配
func TestManager_ParseToken_WrongSecret(t *testing.T) {
	m1 := NewManager("secret-one", time.Hour, time.Hour)
	m2 := NewManager("secret-two", time.Hour, time.Hour)

	pair, err := m1.GenerateToken(1, "zhangsan", "Customer")
	require.NoError(t, err)

	_, err = m2.ParseToken(pair.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestManager_ParseToken_Garbage 测试非法Token串
func TestManager_ParseToken_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour, time.Hour)

	_, err := m.ParseToken("not.a.token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = m.ParseToken("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// TestManager_RefreshAccessToken 测试用Refresh Token换取新Access Token
func TestManager_RefreshAccessToken(t *testing.T) {
	m := NewManager("test-secret", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "zhangsan", "Admin")
	require.NoError(t, err)

	newAccess, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseToken(newAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
}
