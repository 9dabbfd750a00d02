package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/campus-bookstore/pkg/errors"
)

// TestHTTPStatus 测试业务错误码到HTTP状态码的映射
func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		code int
		want int
	}{
		{"成功", 0, http.StatusOK},
		{"未登录", apperrors.ErrCodeUnauthorized, http.StatusUnauthorized},
		{"Token过期", apperrors.ErrCodeTokenExpired, http.StatusUnauthorized},
		{"无权限", apperrors.ErrCodeForbidden, http.StatusForbidden},
		{"图书不存在", apperrors.ErrCodeBookNotFound, http.StatusNotFound},
		{"库存不足", apperrors.ErrCodeInsufficientStock, http.StatusBadRequest},
		{"参数错误", apperrors.ErrCodeInvalidParams, http.StatusBadRequest},
		{"数据库错误", apperrors.ErrCodeDatabaseError, http.StatusServiceUnavailable},
		{"内部错误", apperrors.ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httpStatus(tc.code))
		})
	}
}

// TestSuccess 测试成功响应结构
func TestSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "success", resp.Message)
	assert.NotNil(t, resp.Data)
}

// TestError 测试AppError响应
func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	Error(c, apperrors.ErrBookNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.ErrCodeBookNotFound, resp.Code)
	assert.Equal(t, "图书不存在", resp.Message)
	assert.Nil(t, resp.Data)
}

// TestNewPageData 测试分页元数据计算
func TestNewPageData(t *testing.T) {
	p := NewPageData([]int{1, 2, 3}, 23, 1, 10)
	assert.Equal(t, 3, p.TotalPages, "23条每页10条共3页")

	p = NewPageData(nil, 20, 2, 10)
	assert.Equal(t, 2, p.TotalPages, "整除时不多算一页")
}
