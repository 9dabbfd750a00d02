package user

import (
	"context"

	"github.com/xiebiao/campus-bookstore/internal/domain/cart"
	"github.com/xiebiao/campus-bookstore/internal/domain/user"
)

// TxManager 事务管理器接口
// 用例层依赖此接口而非mysql包的具体实现,便于单元测试注入直通实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SignupUseCase 顾客注册用例
// 设计说明:用户与购物车在同一事务中创建,保证"每个用户恰好一个购物车"的不变式
type SignupUseCase struct {
	userService user.Service
	cartRepo    cart.Repository
	txManager   TxManager
}

// NewSignupUseCase 创建注册用例
func NewSignupUseCase(
	userService user.Service,
	cartRepo cart.Repository,
	txManager TxManager,
) *SignupUseCase {
	return &SignupUseCase{
		userService: userService,
		cartRepo:    cartRepo,
		txManager:   txManager,
	}
}

// SignupRequest 注册请求DTO
type SignupRequest struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}

// SignupResponse 注册响应DTO
type SignupResponse struct {
	User UserInfo `json:"user"`
}

// Execute 执行注册
func (uc *SignupUseCase) Execute(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	var registered *user.User

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 注册用户(校验+加密在领域服务中完成)
		u, err := uc.userService.Register(txCtx,
			req.Username, req.Password,
			req.FirstName, req.LastName,
			req.Email, req.Phone, req.Address)
		if err != nil {
			return err
		}

		// 2. 同一事务中创建购物车
		if _, err := uc.cartRepo.Create(txCtx, u.ID); err != nil {
			return err
		}

		registered = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SignupResponse{User: toUserInfo(registered)}, nil
}
