package order

import (
	"context"
)

// Repository 订单仓储接口
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. Create和UpdateStatus必须在结算事务中调用(通过context传递事务)
type Repository interface {
	// Create 创建订单(包含订单明细,同一事务)
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(包含订单明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// UpdateStatus 更新订单状态
	UpdateStatus(ctx context.Context, order *Order) error

	// ListByUserID 分页查询用户的历史订单(含明细,按下单时间降序)
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)
}
