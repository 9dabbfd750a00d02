package order

import (
	"context"
	"fmt"

	"github.com/xiebiao/campus-bookstore/internal/domain/order"
)

// ListOrdersUseCase 历史订单查询用例
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建历史订单查询用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// OrderItemInfo 订单明细DTO
type OrderItemInfo struct {
	ISBN      string `json:"isbn"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`      // 下单时单价(分)
	PriceYuan string `json:"price_yuan"` // 元(展示用)
}

// OrderInfo 订单DTO
type OrderInfo struct {
	ID        uint            `json:"id"`
	OrderNo   string          `json:"order_no"`
	OrderDate string          `json:"order_date"`
	Total     int64           `json:"total"`
	TotalYuan string          `json:"total_yuan"`
	Status    string          `json:"status"`
	Items     []OrderItemInfo `json:"items"`
}

// ListOrdersResponse 历史订单响应DTO
type ListOrdersResponse struct {
	Orders   []OrderInfo `json:"orders"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Execute 执行查询(按下单时间降序)
func (uc *ListOrdersUseCase) Execute(ctx context.Context, userID uint, page, pageSize int) (*ListOrdersResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	orders, total, err := uc.orderRepo.ListByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}

	infos := make([]OrderInfo, len(orders))
	for i, o := range orders {
		infos[i] = toOrderInfo(o)
	}

	return &ListOrdersResponse{
		Orders:   infos,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetOrderUseCase 订单详情用例
// 权限规则:只能查看自己的订单;为避免泄露订单存在性,他人订单返回不存在
type GetOrderUseCase struct {
	orderRepo order.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo}
}

// Execute 执行查询
func (uc *GetOrderUseCase) Execute(ctx context.Context, userID, orderID uint) (*OrderInfo, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !o.IsOwnedBy(userID) {
		return nil, order.ErrOrderNotFound
	}

	info := toOrderInfo(o)
	return &info, nil
}

// toOrderInfo 领域实体 → DTO
func toOrderInfo(o *order.Order) OrderInfo {
	info := OrderInfo{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		OrderDate: o.OrderDate.Format("2006-01-02 15:04:05"),
		Total:     o.Total,
		TotalYuan: formatPrice(o.Total),
		Status:    o.Status.String(),
		Items:     []OrderItemInfo{},
	}
	for _, item := range o.Items {
		info.Items = append(info.Items, OrderItemInfo{
			ISBN:      item.ISBN,
			Quantity:  item.Quantity,
			Price:     item.Price,
			PriceYuan: formatPrice(item.Price),
		})
	}
	return info
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	return fmt.Sprintf("%.2f", float64(priceFen)/100.0)
}
