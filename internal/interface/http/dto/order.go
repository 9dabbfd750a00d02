package dto

// CheckoutRequest HTTP结算请求
// 银行卡字段按原样存储,不做格式校验也不发起扣款
type CheckoutRequest struct {
	CardNumber string `json:"card_number" binding:"required,max=32" example:"6222021234567890123"`
	CardExpiry string `json:"card_expiry" binding:"required,max=10" example:"12/27"`
}

// ListOrdersRequest HTTP历史订单请求
type ListOrdersRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
}
