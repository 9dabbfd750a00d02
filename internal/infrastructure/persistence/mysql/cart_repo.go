package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/campus-bookstore/internal/domain/cart"
	apperrors "github.com/xiebiao/campus-bookstore/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
// 设计说明:
// 1. AddQuantity使用INSERT ... ON DUPLICATE KEY UPDATE实现数量累加
// 2. Lines联查books表,返回含当前价格和库存的读模型
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// Create 为用户创建购物车
// 注册时与用户创建在同一事务中执行
func (r *cartRepository) Create(ctx context.Context, userID uint) (*cart.Cart, error) {
	model := &CartModel{UserID: userID}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return nil, apperrors.Wrap(err, "创建购物车失败")
	}

	return &cart.Cart{
		ID:        model.ID,
		UserID:    model.UserID,
		CreatedAt: model.CreatedAt,
	}, nil
}

// FindByUserID 根据用户ID查找购物车
func (r *cartRepository) FindByUserID(ctx context.Context, userID uint) (*cart.Cart, error) {
	var model CartModel
	err := getDB(ctx, r.db).Where("user_id = ?", userID).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, apperrors.Wrap(err, "查询购物车失败")
	}

	return &cart.Cart{
		ID:        model.ID,
		UserID:    model.UserID,
		CreatedAt: model.CreatedAt,
	}, nil
}

// Items 查询购物车所有条目
func (r *cartRepository) Items(ctx context.Context, cartID uint) ([]cart.Item, error) {
	var models []CartItemModel
	err := getDB(ctx, r.db).Where("cart_id = ?", cartID).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车条目失败")
	}

	items := make([]cart.Item, len(models))
	for i, m := range models {
		items[i] = cart.Item{
			ID:        m.ID,
			CartID:    m.CartID,
			ISBN:      m.ISBN,
			Quantity:  m.Quantity,
			UpdatedAt: m.UpdatedAt,
		}
	}
	return items, nil
}

// Lines 查询购物车条目并联查图书
// 返回读模型:标题、当前单价、当前库存随图书表实时变化
func (r *cartRepository) Lines(ctx context.Context, cartID uint) ([]cart.Line, error) {
	var lines []cart.Line
	err := getDB(ctx, r.db).Raw(`
		SELECT ci.isbn, b.title, ci.quantity, b.price AS unit_price, b.stock
		FROM cart_items ci
		JOIN books b ON b.isbn = ci.isbn
		WHERE ci.cart_id = ?
		ORDER BY ci.id ASC`, cartID).Scan(&lines).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询购物车明细失败")
	}
	return lines, nil
}

// ItemQuantity 查询某本书在购物车中的数量,不存在时返回0
func (r *cartRepository) ItemQuantity(ctx context.Context, cartID uint, isbn string) (int, error) {
	var model CartItemModel
	err := getDB(ctx, r.db).Where("cart_id = ? AND isbn = ?", cartID, isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, apperrors.Wrap(err, "查询购物车条目失败")
	}

	return model.Quantity, nil
}

// AddQuantity 累加数量(upsert)
// (cart_id, isbn)冲突时执行quantity = quantity + ?,否则插入新行
func (r *cartRepository) AddQuantity(ctx context.Context, cartID uint, isbn string, quantity int) error {
	model := &CartItemModel{
		CartID:   cartID,
		ISBN:     isbn,
		Quantity: quantity,
	}

	err := getDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "isbn"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", quantity),
			"updated_at": time.Now(),
		}),
	}).Create(model).Error
	if err != nil {
		return apperrors.Wrap(err, "加入购物车失败")
	}

	return nil
}

// RemoveItem 删除某本书的条目
func (r *cartRepository) RemoveItem(ctx context.Context, cartID uint, isbn string) error {
	result := getDB(ctx, r.db).Where("cart_id = ? AND isbn = ?", cartID, isbn).Delete(&CartItemModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除购物车条目失败")
	}
	if result.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}

	return nil
}

// Clear 清空购物车(购物车本身保留)
func (r *cartRepository) Clear(ctx context.Context, cartID uint) error {
	err := getDB(ctx, r.db).Where("cart_id = ?", cartID).Delete(&CartItemModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "清空购物车失败")
	}
	return nil
}
