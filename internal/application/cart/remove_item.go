package cart

import (
	"context"

	"github.com/xiebiao/campus-bookstore/internal/domain/cart"
)

// RemoveItemUseCase 移除购物车条目用例
type RemoveItemUseCase struct {
	cartRepo cart.Repository
}

// NewRemoveItemUseCase 创建移除购物车条目用例
func NewRemoveItemUseCase(cartRepo cart.Repository) *RemoveItemUseCase {
	return &RemoveItemUseCase{cartRepo: cartRepo}
}

// Execute 执行移除
func (uc *RemoveItemUseCase) Execute(ctx context.Context, userID uint, isbn string) error {
	c, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return uc.cartRepo.RemoveItem(ctx, c.ID, isbn)
}
