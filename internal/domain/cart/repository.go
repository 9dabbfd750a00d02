package cart

import (
	"context"
)

// Repository 购物车仓储接口
// 设计说明:所有方法通过context参与外层事务(如有)
type Repository interface {
	// Create 为用户创建购物车(注册事务内调用)
	Create(ctx context.Context, userID uint) (*Cart, error)

	// FindByUserID 根据用户ID查找购物车
	// 不存在时返回ErrCartNotFound
	FindByUserID(ctx context.Context, userID uint) (*Cart, error)

	// Items 查询购物车所有条目
	Items(ctx context.Context, cartID uint) ([]Item, error)

	// Lines 查询购物车条目并联查图书(标题、当前价格、当前库存)
	Lines(ctx context.Context, cartID uint) ([]Line, error)

	// ItemQuantity 查询某本书在购物车中的数量,不存在时返回0
	ItemQuantity(ctx context.Context, cartID uint, isbn string) (int, error)

	// AddQuantity 累加数量(upsert)
	// (cartID, ISBN)已存在则数量累加,否则插入新行
	AddQuantity(ctx context.Context, cartID uint, isbn string, quantity int) error

	// RemoveItem 删除某本书的条目
	// 条目不存在时返回ErrItemNotFound
	RemoveItem(ctx context.Context, cartID uint, isbn string) error

	// Clear 清空购物车(登出和结算成功时调用),购物车本身保留
	Clear(ctx context.Context, cartID uint) error
}
