package user

import (
	"context"
)

// Repository 用户仓储接口
// 接口定义在domain层，实现在infrastructure/persistence/mysql层
type Repository interface {
	// Create 创建用户
	// 用户名已存在时返回ErrUsernameDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户
	// 不存在时返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByUsername 根据用户名查找用户
	FindByUsername(ctx context.Context, username string) (*User, error)

	// UpdateProfile 部分更新个人信息，只更新upd中非nil的字段
	UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) error

	// UpdateRole 更新用户角色（管理员提升）
	UpdateRole(ctx context.Context, id uint, role Role) error

	// List 查询所有用户（管理员）
	List(ctx context.Context) ([]*User, error)
}
