package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/campus-bookstore/internal/domain/replenishment"
	apperrors "github.com/xiebiao/campus-bookstore/pkg/errors"
)

// replenishmentRepository 进货订单仓储实现(MySQL)
type replenishmentRepository struct {
	db *gorm.DB
}

// NewReplenishmentRepository 创建进货订单仓储
func NewReplenishmentRepository(db *gorm.DB) replenishment.Repository {
	return &replenishmentRepository{db: db}
}

// Create 创建进货订单
func (r *replenishmentRepository) Create(ctx context.Context, o *replenishment.Order) error {
	model := &PublisherOrderModel{
		ISBN:        o.ISBN,
		PublisherID: o.PublisherID,
		Quantity:    o.Quantity,
		Status:      int(o.Status),
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建进货订单失败")
	}

	o.ID = model.ID
	o.CreatedAt = model.CreatedAt
	o.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找进货订单
func (r *replenishmentRepository) FindByID(ctx context.Context, id uint) (*replenishment.Order, error) {
	var model PublisherOrderModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, replenishment.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询进货订单失败")
	}

	return toReplenishmentEntity(&model), nil
}

// LockByID 悲观锁查询进货订单
// SELECT FOR UPDATE防止并发确认导致库存重复增加
func (r *replenishmentRepository) LockByID(ctx context.Context, id uint) (*replenishment.Order, error) {
	var model PublisherOrderModel
	db := getDB(ctx, r.db)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, replenishment.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "锁定进货订单失败")
	}

	return toReplenishmentEntity(&model), nil
}

// UpdateStatus 更新进货订单状态
func (r *replenishmentRepository) UpdateStatus(ctx context.Context, o *replenishment.Order) error {
	result := getDB(ctx, r.db).Model(&PublisherOrderModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"status":     int(o.Status),
			"updated_at": o.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新进货订单状态失败")
	}
	if result.RowsAffected == 0 {
		return replenishment.ErrOrderNotFound
	}

	return nil
}

// List 分页查询进货订单,status为0时不过滤状态
func (r *replenishmentRepository) List(ctx context.Context, status replenishment.Status, page, pageSize int) ([]*replenishment.Order, int64, error) {
	var models []PublisherOrderModel
	var total int64

	query := getDB(ctx, r.db).Model(&PublisherOrderModel{})
	if status != 0 {
		query = query.Where("status = ?", int(status))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询进货订单总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询进货订单列表失败")
	}

	orders := make([]*replenishment.Order, len(models))
	for i := range models {
		orders[i] = toReplenishmentEntity(&models[i])
	}

	return orders, total, nil
}

// toReplenishmentEntity GORM模型 → 领域实体
func toReplenishmentEntity(model *PublisherOrderModel) *replenishment.Order {
	return &replenishment.Order{
		ID:          model.ID,
		ISBN:        model.ISBN,
		PublisherID: model.PublisherID,
		Quantity:    model.Quantity,
		Status:      replenishment.Status(model.Status),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
