package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
	"github.com/xiebiao/campus-bookstore/internal/domain/order"
	"github.com/xiebiao/campus-bookstore/internal/domain/replenishment"
	"github.com/xiebiao/campus-bookstore/internal/domain/report"
	apperrors "github.com/xiebiao/campus-bookstore/pkg/errors"
)

// reportRepository 报表查询实现(MySQL)
// 设计说明:
// 1. 聚合计算下推到数据库执行(SUM/COUNT/GROUP BY),应用层不做内存汇总
// 2. 销售统计只计入已完成订单,进货统计只计入已确认进货单
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建报表仓储
func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{db: db}
}

// MonthlySales 指定年月的销售汇总
func (r *reportRepository) MonthlySales(ctx context.Context, year, month int) (*report.MonthlySales, error) {
	result := &report.MonthlySales{Year: year, Month: month}

	err := getDB(ctx, r.db).Raw(`
		SELECT COUNT(*) AS order_count, COALESCE(SUM(total), 0) AS total_sales
		FROM orders
		WHERE status = ? AND YEAR(order_date) = ? AND MONTH(order_date) = ?`,
		int(order.StatusCompleted), year, month).Scan(result).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询月度销售汇总失败")
	}

	return result, nil
}

// DailySales 指定日期的销售汇总
func (r *reportRepository) DailySales(ctx context.Context, day time.Time) (*report.DailySales, error) {
	date := day.Format("2006-01-02")
	result := &report.DailySales{Date: date}

	err := getDB(ctx, r.db).Raw(`
		SELECT COUNT(*) AS order_count, COALESCE(SUM(total), 0) AS total_sales
		FROM orders
		WHERE status = ? AND DATE(order_date) = ?`,
		int(order.StatusCompleted), date).Scan(result).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询单日销售汇总失败")
	}

	return result, nil
}

// TopCustomers 自since以来消费金额最高的客户
func (r *reportRepository) TopCustomers(ctx context.Context, since time.Time, limit int) ([]*report.CustomerSales, error) {
	var rows []*report.CustomerSales

	err := getDB(ctx, r.db).Raw(`
		SELECT u.id AS user_id, u.username,
		       COUNT(o.id) AS order_count, COALESCE(SUM(o.total), 0) AS total_spent
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.status = ? AND o.order_date >= ?
		GROUP BY u.id, u.username
		ORDER BY total_spent DESC
		LIMIT ?`,
		int(order.StatusCompleted), since, limit).Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询客户消费排行失败")
	}

	return rows, nil
}

// TopSellingBooks 自since以来销量最高的图书
func (r *reportRepository) TopSellingBooks(ctx context.Context, since time.Time, limit int) ([]*report.BookSales, error) {
	var rows []*report.BookSales

	err := getDB(ctx, r.db).Raw(`
		SELECT oi.isbn, b.title, COALESCE(SUM(oi.quantity), 0) AS copies_sold
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN books b ON b.isbn = oi.isbn
		WHERE o.status = ? AND o.order_date >= ?
		GROUP BY oi.isbn, b.title
		ORDER BY copies_sold DESC
		LIMIT ?`,
		int(order.StatusCompleted), since, limit).Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书销量排行失败")
	}

	return rows, nil
}

// BookReplenishments 单本图书的已确认进货统计
// LEFT JOIN保证没有进货记录的图书也返回(计数为0)
func (r *reportRepository) BookReplenishments(ctx context.Context, isbn string) (*report.ReplenishmentStats, error) {
	var rows []*report.ReplenishmentStats

	err := getDB(ctx, r.db).Raw(`
		SELECT b.isbn, b.title,
		       COUNT(po.id) AS order_count, COALESCE(SUM(po.quantity), 0) AS total_restocked
		FROM books b
		LEFT JOIN publisher_orders po ON po.isbn = b.isbn AND po.status = ?
		WHERE b.isbn = ?
		GROUP BY b.isbn, b.title`,
		int(replenishment.StatusConfirmed), isbn).Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书进货统计失败")
	}

	if len(rows) == 0 {
		return nil, catalog.ErrBookNotFound
	}

	return rows[0], nil
}
