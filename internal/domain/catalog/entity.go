package catalog

import (
	"time"
)

// Category 图书分类
// 固定枚举集合，来自书店的五大分类
type Category string

const (
	CategoryScience   Category = "Science"
	CategoryArt       Category = "Art"
	CategoryReligion  Category = "Religion"
	CategoryHistory   Category = "History"
	CategoryGeography Category = "Geography"
)

// Categories 所有合法分类
var Categories = []Category{
	CategoryScience,
	CategoryArt,
	CategoryReligion,
	CategoryHistory,
	CategoryGeography,
}

// Valid 校验分类是否合法
func (c Category) Valid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Book 图书实体(聚合根)
// 设计说明:
// 1. ISBN是业务主键(数据库层保证唯一性)
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. Threshold是补货阈值,库存低于该值时提示进货
// 4. 作者与图书多对多,出版社与图书一对多
type Book struct {
	ID          uint
	ISBN        string   // ISBN号(国际标准书号)
	Title       string   // 书名
	PubYear     int      // 出版年份
	Price       int64    // 价格(单位:分,1元=100分)
	Stock       int      // 库存数量
	Threshold   int      // 补货阈值
	Category    Category // 分类
	PublisherID uint     // 出版社ID
	Authors     []Author // 作者列表(详情查询时加载)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// 字段校验在Service层完成,调用方需先通过校验
func NewBook(isbn, title string, pubYear int, price int64, stock, threshold int, category Category, publisherID uint) *Book {
	now := time.Now()
	return &Book{
		ISBN:        isbn,
		Title:       title,
		PubYear:     pubYear,
		Price:       price,
		Stock:       stock,
		Threshold:   threshold,
		Category:    category,
		PublisherID: publisherID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DecrStock 扣减库存(用于订单结算)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return ErrInsufficientStock
	}
	b.Stock -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// IncrStock 增加库存(用于进货订单确认)
func (b *Book) IncrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	b.Stock += quantity
	b.UpdatedAt = time.Now()
	return nil
}

// NeedsRestock 库存是否低于补货阈值
func (b *Book) NeedsRestock() bool {
	return b.Stock < b.Threshold
}

// Author 作者实体
// 与图书通过book_authors关联表多对多
type Author struct {
	ID        uint
	Name      string
	CreatedAt time.Time
}

// Publisher 出版社实体
type Publisher struct {
	ID        uint
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
}

// BookUpdate 图书部分更新结构
// 设计说明:
// 1. 每个可变属性一个可选字段,nil表示不修改
// 2. 整体校验通过后才执行单次更新,避免字段名拼接SQL
// 3. AuthorIDs为nil表示作者不变,空切片表示清空作者
type BookUpdate struct {
	Title       *string
	PubYear     *int
	Price       *int64
	Stock       *int
	Threshold   *int
	Category    *Category
	PublisherID *uint
	AuthorIDs   []uint
}

// Empty 是否没有任何字段需要更新
func (u BookUpdate) Empty() bool {
	return u.Title == nil && u.PubYear == nil && u.Price == nil &&
		u.Stock == nil && u.Threshold == nil && u.Category == nil &&
		u.PublisherID == nil && u.AuthorIDs == nil
}

// Validate 整体校验所有待更新字段
func (u BookUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return ErrInvalidTitle
	}
	if u.Price != nil && (*u.Price < 1 || *u.Price > maxPrice) {
		return ErrInvalidPrice
	}
	if u.Stock != nil && *u.Stock < 0 {
		return ErrInvalidStock
	}
	if u.Threshold != nil && *u.Threshold < 0 {
		return ErrInvalidThreshold
	}
	if u.Category != nil && !u.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// maxPrice 价格上限(分),9999.99元
const maxPrice = 999999
