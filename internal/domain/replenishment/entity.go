package replenishment

import (
	"time"
)

// Status 进货订单状态
// 生命周期只有一次前向转换:Pending → Confirmed(终态)
// 确认时库存增加与状态转换在同一事务中执行
type Status int

const (
	StatusPending   Status = 1 // 待确认
	StatusConfirmed Status = 2 // 已确认(终态)
)

// String 实现Stringer接口
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "待确认"
	case StatusConfirmed:
		return "已确认"
	default:
		return "未知状态"
	}
}

// Order 进货订单实体(聚合根)
// 设计说明:
// 1. 结构上是客户订单的镜像,但只有单一图书行
// 2. 出版社必须与图书登记的出版社一致
// 3. 重复确认被拒绝,保证库存不会重复增加
type Order struct {
	ID          uint
	ISBN        string // 进货图书
	PublisherID uint   // 供货出版社
	Quantity    int    // 进货数量
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrder 创建进货订单(工厂方法),初始状态Pending
func NewOrder(isbn string, publisherID uint, quantity int) *Order {
	now := time.Now()
	return &Order{
		ISBN:        isbn,
		PublisherID: publisherID,
		Quantity:    quantity,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Confirm 确认进货订单(领域行为)
// 业务规则:只有Pending状态可以确认;重复确认返回ErrAlreadyConfirmed
func (o *Order) Confirm() error {
	if o.Status == StatusConfirmed {
		return ErrAlreadyConfirmed
	}
	o.Status = StatusConfirmed
	o.UpdatedAt = time.Now()
	return nil
}
