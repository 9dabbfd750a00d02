package report

import (
	"context"
	"time"
)

// Repository 报表查询接口
// 所有统计只计入已完成的订单/已确认的进货单
type Repository interface {
	// MonthlySales 指定年月的销售汇总
	MonthlySales(ctx context.Context, year, month int) (*MonthlySales, error)

	// DailySales 指定日期的销售汇总
	DailySales(ctx context.Context, day time.Time) (*DailySales, error)

	// TopCustomers 自since以来消费金额最高的客户
	TopCustomers(ctx context.Context, since time.Time, limit int) ([]*CustomerSales, error)

	// TopSellingBooks 自since以来销量最高的图书
	TopSellingBooks(ctx context.Context, since time.Time, limit int) ([]*BookSales, error)

	// BookReplenishments 单本图书的已确认进货统计
	BookReplenishments(ctx context.Context, isbn string) (*ReplenishmentStats, error)
}
