package user

import (
	"context"
	"time"

	"github.com/xiebiao/campus-bookstore/internal/domain/cart"
	"github.com/xiebiao/campus-bookstore/internal/infrastructure/persistence/redis"
)

// LogoutUseCase 用户登出用例
// 业务规则:登出时清空购物车(购物车本身保留),删除会话,Token加入黑名单
type LogoutUseCase struct {
	cartRepo     cart.Repository
	sessionStore *redis.SessionStore
	blacklistTTL time.Duration // Access Token有效期
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(
	cartRepo cart.Repository,
	sessionStore *redis.SessionStore,
	blacklistTTL time.Duration,
) *LogoutUseCase {
	return &LogoutUseCase{
		cartRepo:     cartRepo,
		sessionStore: sessionStore,
		blacklistTTL: blacklistTTL,
	}
}

// Execute 执行登出
func (uc *LogoutUseCase) Execute(ctx context.Context, userID uint, accessToken string) error {
	// 1. 清空购物车
	c, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if err := uc.cartRepo.Clear(ctx, c.ID); err != nil {
		return err
	}

	// 2. 删除会话
	if err := uc.sessionStore.DeleteSession(ctx, userID); err != nil {
		return err
	}

	// 3. Access Token加入黑名单(防止过期前继续使用)
	return uc.sessionStore.AddToBlacklist(ctx, accessToken, uc.blacklistTTL)
}
