package dto

// CreateReplenishmentRequest HTTP创建进货订单请求(管理员)
type CreateReplenishmentRequest struct {
	ISBN        string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	PublisherID uint   `json:"publisher_id" binding:"required" example:"1"`
	Quantity    int    `json:"quantity" binding:"required,min=1" example:"50"`
}

// ListReplenishmentsRequest HTTP进货订单列表请求(管理员)
type ListReplenishmentsRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=pending confirmed" example:"pending"`
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
}

// DailySalesRequest HTTP单日销售报表请求(管理员)
type DailySalesRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02" example:"2026-08-01"`
}

// ReplenishmentStatsRequest HTTP图书进货统计请求(管理员)
type ReplenishmentStatsRequest struct {
	ISBN string `form:"isbn" binding:"required,max=20" example:"9787115428028"`
}
