package catalog

import (
	"context"
)

// Repository 图书目录仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 所有方法都通过context参与外层事务(如有)
type Repository interface {
	// CreateBook 创建图书(含作者关联)
	// ISBN重复时返回ErrISBNDuplicate
	CreateBook(ctx context.Context, book *Book) error

	// FindByISBN 根据ISBN查找图书(含作者)
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// LockByISBN 悲观锁查询图书(用于结算时锁定库存)
	// 使用SELECT FOR UPDATE锁定行,防止并发超卖
	LockByISBN(ctx context.Context, isbn string) (*Book, error)

	// UpdateBook 部分更新图书,只更新upd中非nil的字段
	UpdateBook(ctx context.Context, isbn string, upd BookUpdate) error

	// AdjustStock 原子调整库存
	// delta为正数表示增加,负数表示减少
	// 库存不足时返回ErrInsufficientStock
	AdjustStock(ctx context.Context, isbn string, delta int) error

	// Search 条件查询图书列表
	Search(ctx context.Context, params SearchParams) ([]*Book, int64, error)

	// CreateAuthor 创建作者
	CreateAuthor(ctx context.Context, author *Author) error

	// ListAuthors 查询所有作者
	ListAuthors(ctx context.Context) ([]*Author, error)

	// FindAuthorsByIDs 批量查找作者(用于校验图书的作者列表)
	FindAuthorsByIDs(ctx context.Context, ids []uint) ([]*Author, error)

	// CreatePublisher 创建出版社
	CreatePublisher(ctx context.Context, publisher *Publisher) error

	// ListPublishers 查询所有出版社
	ListPublishers(ctx context.Context) ([]*Publisher, error)

	// FindPublisherByID 根据ID查找出版社
	FindPublisherByID(ctx context.Context, id uint) (*Publisher, error)
}

// SearchParams 图书搜索参数
// 标题和作者模糊匹配,分类和ISBN精确匹配
type SearchParams struct {
	Title     string   // 标题关键词(LIKE)
	Category  Category // 分类(精确)
	ISBN      string   // ISBN(精确)
	Author    string   // 作者姓名关键词(LIKE)
	Publisher string   // 出版社名称关键词(LIKE)
	Page      int      // 页码(从1开始)
	PageSize  int      // 每页数量
}
