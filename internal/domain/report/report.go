// Package report 销售统计报表的读模型
// 设计说明:
// 1. 报表是纯查询场景,没有实体和业务行为,只定义读模型和仓储接口
// 2. 金额口径:只统计已完成(Completed)的订单
// 3. 聚合计算下推到数据库执行,应用层不做内存汇总
package report

// MonthlySales 月度销售汇总
type MonthlySales struct {
	Year       int   `json:"year"`
	Month      int   `json:"month"`
	OrderCount int64 `json:"order_count"` // 订单数
	TotalSales int64 `json:"total_sales"` // 销售总额(分)
}

// DailySales 单日销售汇总
type DailySales struct {
	Date       string `json:"date"` // YYYY-MM-DD
	OrderCount int64  `json:"order_count"`
	TotalSales int64  `json:"total_sales"` // 销售总额(分)
}

// CustomerSales 客户消费排行条目
type CustomerSales struct {
	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
	OrderCount int64  `json:"order_count"`
	TotalSpent int64  `json:"total_spent"` // 消费总额(分)
}

// BookSales 图书销量排行条目
type BookSales struct {
	ISBN       string `json:"isbn"`
	Title      string `json:"title"`
	CopiesSold int64  `json:"copies_sold"` // 售出册数
}

// ReplenishmentStats 单本图书的进货统计
type ReplenishmentStats struct {
	ISBN           string `json:"isbn"`
	Title          string `json:"title"`
	OrderCount     int64  `json:"order_count"`     // 进货单数(已确认)
	TotalRestocked int64  `json:"total_restocked"` // 累计进货册数
}
