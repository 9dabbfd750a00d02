package cart

import (
	"time"
)

// Cart 购物车实体(聚合根)
// 设计说明:
// 1. 每个用户恰好拥有一个购物车,注册时与用户在同一事务中创建
// 2. 购物车永不删除,只会被清空(登出或结算成功时)
type Cart struct {
	ID        uint
	UserID    uint
	CreatedAt time.Time
}

// Item 购物车条目
// (cartID, ISBN)唯一:重复加入同一本书时累加数量而非新增行
type Item struct {
	ID        uint
	CartID    uint
	ISBN      string
	Quantity  int
	UpdatedAt time.Time
}

// Line 购物车行(联查图书后的读模型)
// 用于view_cart展示和结算时的行项目来源
type Line struct {
	ISBN      string
	Title     string
	Quantity  int
	UnitPrice int64 // 当前单价(分)
	Stock     int   // 当前库存
}

// Subtotal 行小计(分)
func (l Line) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}
