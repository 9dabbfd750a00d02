package replenishment

import (
	"context"

	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
	"github.com/xiebiao/campus-bookstore/internal/domain/replenishment"
)

// CreateUseCase 创建进货订单用例(管理员)
// 业务规则:
// 1. 图书必须存在,数量必须>0
// 2. 出版社必须与图书登记的出版社一致
type CreateUseCase struct {
	replRepo    replenishment.Repository
	catalogRepo catalog.Repository
}

// NewCreateUseCase 创建进货订单用例
func NewCreateUseCase(replRepo replenishment.Repository, catalogRepo catalog.Repository) *CreateUseCase {
	return &CreateUseCase{
		replRepo:    replRepo,
		catalogRepo: catalogRepo,
	}
}

// CreateRequest 创建进货订单请求DTO
type CreateRequest struct {
	ISBN        string
	PublisherID uint
	Quantity    int
}

// Execute 执行创建
func (uc *CreateUseCase) Execute(ctx context.Context, req CreateRequest) (*OrderInfo, error) {
	if req.Quantity <= 0 {
		return nil, replenishment.ErrInvalidQuantity
	}

	// 图书必须存在
	b, err := uc.catalogRepo.FindByISBN(ctx, req.ISBN)
	if err != nil {
		return nil, err
	}

	// 出版社必须存在且与图书的供货出版社一致
	if _, err := uc.catalogRepo.FindPublisherByID(ctx, req.PublisherID); err != nil {
		return nil, err
	}
	if b.PublisherID != req.PublisherID {
		return nil, replenishment.ErrPublisherMismatch
	}

	o := replenishment.NewOrder(req.ISBN, req.PublisherID, req.Quantity)
	if err := uc.replRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	info := toOrderInfo(o)
	return &info, nil
}
