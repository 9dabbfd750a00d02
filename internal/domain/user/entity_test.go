package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRole_Valid 测试角色枚举
func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleCustomer.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("SuperAdmin").Valid())
	assert.False(t, Role("").Valid())
}

// TestNewCustomer 测试顾客工厂方法
func TestNewCustomer(t *testing.T) {
	u := NewCustomer("zhangsan", "$2a$12$hash", "三", "张", "zhangsan@example.com", "13800138000", "大学城1号")

	assert.Equal(t, RoleCustomer, u.Role, "新注册用户必须是顾客角色")
	assert.False(t, u.IsAdmin())
}

// TestUser_Promote 测试提升为管理员
func TestUser_Promote(t *testing.T) {
	t.Run("顾客可以提升", func(t *testing.T) {
		u := NewCustomer("zhangsan", "hash", "三", "张", "z@example.com", "", "")

		err := u.Promote()
		require.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)
		assert.True(t, u.IsAdmin())
	})

	t.Run("重复提升应失败", func(t *testing.T) {
		u := NewCustomer("zhangsan", "hash", "三", "张", "z@example.com", "", "")
		require.NoError(t, u.Promote())

		assert.ErrorIs(t, u.Promote(), ErrAlreadyAdmin)
		assert.Equal(t, RoleAdmin, u.Role)
	})
}

// TestProfileUpdate_Empty 测试空更新判断
func TestProfileUpdate_Empty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.Empty())

	email := "new@example.com"
	assert.False(t, ProfileUpdate{Email: &email}.Empty())
}
