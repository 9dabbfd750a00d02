package replenishment

import (
	"context"

	"github.com/xiebiao/campus-bookstore/internal/domain/replenishment"
)

// ListUseCase 进货订单列表用例(管理员)
type ListUseCase struct {
	replRepo replenishment.Repository
}

// NewListUseCase 创建进货订单列表用例
func NewListUseCase(replRepo replenishment.Repository) *ListUseCase {
	return &ListUseCase{replRepo: replRepo}
}

// OrderInfo 进货订单DTO
type OrderInfo struct {
	ID          uint   `json:"id"`
	ISBN        string `json:"isbn"`
	PublisherID uint   `json:"publisher_id"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ListResponse 进货订单列表响应DTO
type ListResponse struct {
	Orders   []OrderInfo `json:"orders"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Execute 执行查询
// status为0时不过滤状态
func (uc *ListUseCase) Execute(ctx context.Context, status replenishment.Status, page, pageSize int) (*ListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orders, total, err := uc.replRepo.List(ctx, status, page, pageSize)
	if err != nil {
		return nil, err
	}

	infos := make([]OrderInfo, len(orders))
	for i, o := range orders {
		infos[i] = toOrderInfo(o)
	}

	return &ListResponse{
		Orders:   infos,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// toOrderInfo 领域实体 → DTO
func toOrderInfo(o *replenishment.Order) OrderInfo {
	return OrderInfo{
		ID:          o.ID,
		ISBN:        o.ISBN,
		PublisherID: o.PublisherID,
		Quantity:    o.Quantity,
		Status:      o.Status.String(),
		CreatedAt:   o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
