package report

import (
	"context"
	"time"

	"github.com/xiebiao/campus-bookstore/internal/domain/report"
)

// 报表默认口径
const (
	topCustomersLimit = 5
	topBooksLimit     = 10
	rankingWindow     = 3 // 排行统计窗口(月)
)

// UseCase 销售统计报表用例(管理员)
// 所有统计只计入已完成订单/已确认进货单,聚合计算由数据库执行
type UseCase struct {
	reportRepo report.Repository
	now        func() time.Time // 可注入,测试时固定时间
}

// NewUseCase 创建报表用例
func NewUseCase(reportRepo report.Repository) *UseCase {
	return &UseCase{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// SalesPrevMonth 上一个自然月的销售汇总
func (uc *UseCase) SalesPrevMonth(ctx context.Context) (*report.MonthlySales, error) {
	prev := uc.now().AddDate(0, -1, 0)
	return uc.reportRepo.MonthlySales(ctx, prev.Year(), int(prev.Month()))
}

// SalesDaily 指定日期的销售汇总
func (uc *UseCase) SalesDaily(ctx context.Context, day time.Time) (*report.DailySales, error) {
	return uc.reportRepo.DailySales(ctx, day)
}

// TopCustomers 近3个月消费金额前5的客户
func (uc *UseCase) TopCustomers(ctx context.Context) ([]*report.CustomerSales, error) {
	since := uc.now().AddDate(0, -rankingWindow, 0)
	return uc.reportRepo.TopCustomers(ctx, since, topCustomersLimit)
}

// TopSellingBooks 近3个月销量前10的图书
func (uc *UseCase) TopSellingBooks(ctx context.Context) ([]*report.BookSales, error) {
	since := uc.now().AddDate(0, -rankingWindow, 0)
	return uc.reportRepo.TopSellingBooks(ctx, since, topBooksLimit)
}

// BookReplenishments 单本图书的已确认进货统计
func (uc *UseCase) BookReplenishments(ctx context.Context, isbn string) (*report.ReplenishmentStats, error) {
	return uc.reportRepo.BookReplenishments(ctx, isbn)
}
