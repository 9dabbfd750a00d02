package order

import (
	"time"
)

// Status 订单状态
// 设计说明:
// 1. 使用int类型而非string(节省存储空间,便于索引)
// 2. 生命周期只有一次前向转换:Pending → Completed(终态)
// 3. 库存扣减与状态转换在同一事务中执行,转换失败则整单回滚
type Status int

const (
	StatusPending   Status = 1 // 待处理
	StatusCompleted Status = 2 // 已完成(终态)
)

// String 实现Stringer接口(方便日志输出)
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "待处理"
	case StatusCompleted:
		return "已完成"
	default:
		return "未知状态"
	}
}

// Order 客户订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,Item是子实体,创建后除状态外不可变
// 2. Total是结算时刻的价格快照,图书后续调价不影响历史订单
// 3. 银行卡字段按原样存储,不做校验也不发起扣款(支付网关不在范围内)
type Order struct {
	ID         uint
	OrderNo    string    // 订单号(业务主键,全局唯一)
	UserID     uint      // 买家用户ID
	OrderDate  time.Time // 下单日期
	Total      int64     // 订单总金额(分),结算时快照
	Status     Status    // 订单状态
	CardNumber string    // 银行卡号(不透明字符串)
	CardExpiry string    // 银行卡有效期(不透明字符串)
	Items      []Item    // 订单明细
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Item 订单明细项
// Price记录下单时的单价(历史价格快照),与图书当前价格解耦
type Item struct {
	ID       uint
	OrderID  uint
	ISBN     string
	Quantity int
	Price    int64 // 下单时单价(分)
}

// NewOrder 创建新订单(工厂方法)
// 初始状态必须为Pending:库存扣减只在Pending→Completed转换时发生
func NewOrder(orderNo string, userID uint, items []Item, total int64, cardNumber, cardExpiry string) *Order {
	now := time.Now()
	return &Order{
		OrderNo:    orderNo,
		UserID:     userID,
		OrderDate:  now,
		Total:      total,
		Status:     StatusPending,
		CardNumber: cardNumber,
		CardExpiry: cardExpiry,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CanTransitionTo 检查是否可以转换到目标状态
// 状态机只允许Pending→Completed,Completed是终态
func (o *Order) CanTransitionTo(target Status) bool {
	return o.Status == StatusPending && target == StatusCompleted
}

// Complete 完成订单(领域行为)
func (o *Order) Complete() error {
	if !o.CanTransitionTo(StatusCompleted) {
		return ErrInvalidStatusTransition
	}
	o.Status = StatusCompleted
	o.UpdatedAt = time.Now()
	return nil
}

// CalculateTotal 根据明细实时计算订单总金额
// 用于校验快照金额与明细是否一致
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定用户
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
