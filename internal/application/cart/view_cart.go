package cart

import (
	"context"
	"fmt"

	"github.com/xiebiao/campus-bookstore/internal/domain/cart"
)

// ViewCartUseCase 查看购物车用例
// 返回联查图书后的明细:标题、当前单价、库存随图书表实时变化
type ViewCartUseCase struct {
	cartRepo cart.Repository
}

// NewViewCartUseCase 创建查看购物车用例
func NewViewCartUseCase(cartRepo cart.Repository) *ViewCartUseCase {
	return &ViewCartUseCase{cartRepo: cartRepo}
}

// CartLineInfo 购物车行DTO
type CartLineInfo struct {
	ISBN         string `json:"isbn"`
	Title        string `json:"title"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unit_price"` // 分
	Stock        int    `json:"stock"`
	Subtotal     int64  `json:"subtotal"`      // 分
	SubtotalYuan string `json:"subtotal_yuan"` // 元(展示用)
}

// ViewCartResponse 查看购物车响应DTO
type ViewCartResponse struct {
	Lines     []CartLineInfo `json:"lines"`
	Total     int64          `json:"total"`      // 分
	TotalYuan string         `json:"total_yuan"` // 元(展示用)
}

// Execute 执行查询
func (uc *ViewCartUseCase) Execute(ctx context.Context, userID uint) (*ViewCartResponse, error) {
	c, err := uc.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, err := uc.cartRepo.Lines(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	resp := &ViewCartResponse{Lines: []CartLineInfo{}}
	for _, line := range lines {
		subtotal := line.Subtotal()
		resp.Lines = append(resp.Lines, CartLineInfo{
			ISBN:         line.ISBN,
			Title:        line.Title,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			Stock:        line.Stock,
			Subtotal:     subtotal,
			SubtotalYuan: formatPrice(subtotal),
		})
		resp.Total += subtotal
	}
	resp.TotalYuan = formatPrice(resp.Total)

	return resp, nil
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	return fmt.Sprintf("%.2f", float64(priceFen)/100.0)
}
