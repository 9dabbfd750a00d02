package user

import (
	"context"

	"github.com/xiebiao/campus-bookstore/internal/domain/user"
)

// ListUsersUseCase 用户列表用例(管理员)
type ListUsersUseCase struct {
	userRepo user.Repository
}

// NewListUsersUseCase 创建用户列表用例
func NewListUsersUseCase(userRepo user.Repository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute 执行查询
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]UserInfo, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]UserInfo, len(users))
	for i, u := range users {
		infos[i] = toUserInfo(u)
	}
	return infos, nil
}

// PromoteUserUseCase 提升管理员用例
// 业务规则:只有Customer可以被提升,重复提升返回ErrAlreadyAdmin
type PromoteUserUseCase struct {
	userRepo user.Repository
}

// NewPromoteUserUseCase 创建提升管理员用例
func NewPromoteUserUseCase(userRepo user.Repository) *PromoteUserUseCase {
	return &PromoteUserUseCase{userRepo: userRepo}
}

// Execute 执行提升
func (uc *PromoteUserUseCase) Execute(ctx context.Context, userID uint) (*UserInfo, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 领域行为校验状态转换
	if err := u.Promote(); err != nil {
		return nil, err
	}

	if err := uc.userRepo.UpdateRole(ctx, u.ID, u.Role); err != nil {
		return nil, err
	}

	info := toUserInfo(u)
	return &info, nil
}
