package cart

import (
	"context"

	"github.com/xiebiao/campus-bookstore/internal/domain/cart"
	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
)

// AddItemUseCase 加入购物车用例
// 业务规则:
// 1. 数量必须>0,图书必须存在
// 2. 购物车已有数量+本次数量不能超过当前库存(预订量检查)
// 3. 同一本书重复加入时累加数量(upsert),不产生新行
type AddItemUseCase struct {
	cartRepo    cart.Repository
	catalogRepo catalog.Repository
}

// NewAddItemUseCase 创建加入购物车用例
func NewAddItemUseCase(cartRepo cart.Repository, catalogRepo catalog.Repository) *AddItemUseCase {
	return &AddItemUseCase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

// Execute 执行加入购物车
// 注意:此处的库存检查是面向用户的友好提示,结算时仍会在事务内做权威检查
func (uc *AddItemUseCase) Execute(ctx context.Context, userID uint, isbn string, quantity int) error {
	if quantity <= 0 {
		return cart.ErrInvalidQuantity
	}

	// 1. 图书必须存在
	b, err := uc.catalogRepo.FindByISBN(ctx, isbn)
	if err != nil {
		return err
	}

	// 2. 查找用户的购物车
	c, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}

	// 3. 已有数量+本次数量不能超过当前库存
	existing, err := uc.cartRepo.ItemQuantity(ctx, c.ID, isbn)
	if err != nil {
		return err
	}
	if existing+quantity > b.Stock {
		return catalog.ErrInsufficientStock
	}

	// 4. 累加数量(upsert)
	return uc.cartRepo.AddQuantity(ctx, c.ID, isbn, quantity)
}
