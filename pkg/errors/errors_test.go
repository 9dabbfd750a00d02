package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAppError_Error 测试错误信息格式
func TestAppError_Error(t *testing.T) {
	plain := New(40001, "库存不足")
	assert.Equal(t, "[40001] 库存不足", plain.Error())

	wrapped := Wrap(errors.New("connection refused"), "数据库错误")
	assert.Contains(t, wrapped.Error(), "connection refused")
	assert.Contains(t, wrapped.Error(), "数据库错误")
}

// TestAppError_Unwrap 测试errors.Is/As支持
func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	wrapped := Wrap(inner, "数据库错误")

	assert.ErrorIs(t, wrapped, inner, "Unwrap应暴露内部错误")

	var appErr *AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, ErrCodeInternal, appErr.Code)
}

// TestWrapWithCode 测试指定错误码包装
func TestWrapWithCode(t *testing.T) {
	inner := errors.New("redis: nil")
	wrapped := WrapWithCode(inner, ErrCodeRedisError, "缓存服务错误")

	assert.Equal(t, ErrCodeRedisError, wrapped.Code)
	assert.ErrorIs(t, wrapped, inner)
}

// TestGetAppError 测试错误提取与兜底包装
func TestGetAppError(t *testing.T) {
	t.Run("AppError直接提取", func(t *testing.T) {
		appErr := GetAppError(ErrInsufficientStock)
		assert.Equal(t, ErrCodeInsufficientStock, appErr.Code)
		assert.Equal(t, "库存不足", appErr.Message)
	})

	t.Run("多层包装后仍可提取", func(t *testing.T) {
		wrapped := fmt.Errorf("结算失败: %w", ErrCartEmpty)
		appErr := GetAppError(wrapped)
		assert.Equal(t, ErrCodeCartEmpty, appErr.Code)
	})

	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		plain := errors.New("something broke")
		appErr := GetAppError(plain)

		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.ErrorIs(t, appErr, plain, "原始错误保留在Err字段供日志记录")
	})
}

// TestIsAppError 测试错误类型判断
func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrBookNotFound))
	assert.True(t, IsAppError(fmt.Errorf("wrap: %w", ErrBookNotFound)))
	assert.False(t, IsAppError(errors.New("plain")))
}
