package replenishment

import (
	"context"
)

// Repository 进货订单仓储接口
type Repository interface {
	// Create 创建进货订单
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找进货订单
	FindByID(ctx context.Context, id uint) (*Order, error)

	// LockByID 悲观锁查询进货订单(确认事务中使用)
	// SELECT FOR UPDATE防止并发确认导致库存重复增加
	LockByID(ctx context.Context, id uint) (*Order, error)

	// UpdateStatus 更新进货订单状态
	UpdateStatus(ctx context.Context, order *Order) error

	// List 分页查询进货订单,status为0时不过滤状态
	List(ctx context.Context, status Status, page, pageSize int) ([]*Order, int64, error)
}
