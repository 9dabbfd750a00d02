package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/campus-bookstore/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明:
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数(MaxOpenConns、MaxIdleConns、ConnMaxLifetime)
// 3. 开发环境开启SQL日志,生产环境关闭
// 4. 自动迁移表结构(AutoMigrate)
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构(开发环境)
	// 注意:生产环境应使用版本化的迁移脚本,不要依赖AutoMigrate
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意:这里使用的是GORM模型(带tag),不是domain层的实体
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&PublisherModel{},
		&AuthorModel{},
		&BookModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&PublisherOrderModel{},
	)
}

// UserModel GORM用户模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/user/entity.go是领域实体,不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex;size:30;not null;comment:用户名"`
	Password  string    `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	FirstName string    `gorm:"size:50;comment:名"`
	LastName  string    `gorm:"size:50;comment:姓"`
	Email     string    `gorm:"size:100;not null;comment:邮箱"`
	Phone     string    `gorm:"size:20;comment:电话"`
	Address   string    `gorm:"size:255;comment:收货地址"`
	Role      string    `gorm:"size:20;not null;default:Customer;comment:角色(Customer/Admin)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// PublisherModel GORM出版社模型
type PublisherModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;comment:出版社名称"`
	Address   string    `gorm:"size:255;comment:地址"`
	Phone     string    `gorm:"size:20;comment:电话"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (PublisherModel) TableName() string {
	return "publishers"
}

// AuthorModel GORM作者模型
type AuthorModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"index;size:100;not null;comment:作者姓名"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. ISBN有唯一索引,防止重复
// 3. 作者通过book_authors关联表多对多
// 4. Threshold是补货阈值,库存低于该值时提示进货
type BookModel struct {
	ID          uint          `gorm:"primaryKey"`
	ISBN        string        `gorm:"uniqueIndex;size:20;not null;comment:ISBN号"`
	Title       string        `gorm:"index;size:200;not null;comment:书名"`
	PubYear     int           `gorm:"comment:出版年份"`
	Price       int64         `gorm:"not null;comment:价格(分)"`
	Stock       int           `gorm:"default:0;comment:库存数量"`
	Threshold   int           `gorm:"default:0;comment:补货阈值"`
	Category    string        `gorm:"index;size:20;not null;comment:分类"`
	PublisherID uint          `gorm:"index;not null;comment:出版社ID"`
	Authors     []AuthorModel `gorm:"many2many:book_authors"` // 多对多关联
	CreatedAt   time.Time     `gorm:"comment:创建时间"`
	UpdatedAt   time.Time     `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// CartModel GORM购物车模型
// UserID唯一索引:每个用户恰好一个购物车
type CartModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex;not null;comment:用户ID"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel GORM购物车条目模型
// (cart_id, isbn)复合唯一索引:同一本书在购物车中只占一行,重复加入累加数量
type CartItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	CartID    uint      `gorm:"uniqueIndex:idx_cart_isbn;not null;comment:购物车ID"`
	ISBN      string    `gorm:"uniqueIndex:idx_cart_isbn;size:20;not null;comment:图书ISBN"`
	Quantity  int       `gorm:"not null;comment:数量"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. 与OrderItemModel是一对多关系
// 2. OrderNo有唯一索引(业务主键)
// 3. Status使用int存储(1待处理 2已完成)
// 4. Total是结算时刻的价格快照
type OrderModel struct {
	ID         uint             `gorm:"primaryKey"`
	OrderNo    string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID     uint             `gorm:"index;not null;comment:买家用户ID"`
	OrderDate  time.Time        `gorm:"index;not null;comment:下单日期"`
	Total      int64            `gorm:"not null;comment:订单总金额(分)"`
	Status     int              `gorm:"index;type:tinyint;default:1;comment:订单状态(1待处理2已完成)"`
	CardNumber string           `gorm:"size:32;comment:银行卡号"`
	CardExpiry string           `gorm:"size:10;comment:银行卡有效期"`
	Items      []OrderItemModel `gorm:"foreignKey:OrderID"` // 一对多关联
	CreatedAt  time.Time        `gorm:"comment:创建时间"`
	UpdatedAt  time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// Price记录下单时的单价快照
type OrderItemModel struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"index;not null;comment:订单ID"`
	ISBN     string `gorm:"index;size:20;not null;comment:图书ISBN"`
	Quantity int    `gorm:"not null;comment:购买数量"`
	Price    int64  `gorm:"not null;comment:下单时单价(分)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}

// PublisherOrderModel GORM进货订单模型
// 结构上是客户订单的镜像,但只有单一图书行
type PublisherOrderModel struct {
	ID          uint      `gorm:"primaryKey"`
	ISBN        string    `gorm:"index;size:20;not null;comment:进货图书ISBN"`
	PublisherID uint      `gorm:"index;not null;comment:供货出版社ID"`
	Quantity    int       `gorm:"not null;comment:进货数量"`
	Status      int       `gorm:"index;type:tinyint;default:1;comment:状态(1待确认2已确认)"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (PublisherOrderModel) TableName() string {
	return "publisher_orders"
}
