package dto

// AddCartItemRequest HTTP加入购物车请求
// 同一本书重复加入时数量累加
type AddCartItemRequest struct {
	ISBN     string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	Quantity int    `json:"quantity" binding:"required,min=1" example:"2"`
}
