package user

import (
	"context"

	"github.com/xiebiao/campus-bookstore/internal/domain/user"
)

// GetProfileUseCase 查询个人信息用例
type GetProfileUseCase struct {
	userRepo user.Repository
}

// NewGetProfileUseCase 创建查询个人信息用例
func NewGetProfileUseCase(userRepo user.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo}
}

// Execute 执行查询
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*UserInfo, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	info := toUserInfo(u)
	return &info, nil
}

// UpdateProfileUseCase 更新个人信息用例
// 部分更新:nil字段不修改,整体校验通过后单次写入
type UpdateProfileUseCase struct {
	userService user.Service
}

// NewUpdateProfileUseCase 创建更新个人信息用例
func NewUpdateProfileUseCase(userService user.Service) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userService: userService}
}

// UpdateProfileRequest 更新个人信息请求DTO
// 指针字段区分"未提供"与"置空"
type UpdateProfileRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
	Password  *string // 明文新密码,领域服务负责强度校验与加密
}

// Execute 执行更新
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, userID uint, req UpdateProfileRequest) error {
	upd := user.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	return uc.userService.UpdateProfile(ctx, userID, upd, req.Password)
}
