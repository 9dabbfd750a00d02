package dto

// AddBookRequest HTTP新增图书请求(管理员)
type AddBookRequest struct {
	ISBN        string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	Title       string `json:"title" binding:"required,max=200" example:"中国通史"`
	PubYear     int    `json:"pub_year" binding:"omitempty,min=1000,max=2100" example:"2021"`
	Price       int64  `json:"price" binding:"required,min=1,max=999999" example:"5900"` // 价格(分)
	Stock       int    `json:"stock" binding:"min=0" example:"100"`
	Threshold   int    `json:"threshold" binding:"min=0" example:"10"` // 补货阈值
	Category    string `json:"category" binding:"required,oneof=Science Art Religion History Geography" example:"History"`
	PublisherID uint   `json:"publisher_id" binding:"required" example:"1"`
	AuthorIDs   []uint `json:"author_ids" binding:"omitempty" example:"1,2"`
}

// UpdateBookRequest HTTP更新图书请求(管理员)
// 指针字段区分"未提供"与"置空";author_ids为null表示作者不变,[]表示清空
type UpdateBookRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	PubYear     *int    `json:"pub_year" binding:"omitempty,min=1000,max=2100"`
	Price       *int64  `json:"price" binding:"omitempty,min=1,max=999999"`
	Stock       *int    `json:"stock" binding:"omitempty,min=0"`
	Threshold   *int    `json:"threshold" binding:"omitempty,min=0"`
	Category    *string `json:"category" binding:"omitempty,oneof=Science Art Religion History Geography"`
	PublisherID *uint   `json:"publisher_id" binding:"omitempty"`
	AuthorIDs   []uint  `json:"author_ids"`
}

// SearchBooksRequest HTTP图书搜索请求
// 标题/作者/出版社模糊匹配,分类和ISBN精确匹配
type SearchBooksRequest struct {
	Title     string `form:"title" binding:"omitempty,max=200" example:"通史"`
	Category  string `form:"category" binding:"omitempty,oneof=Science Art Religion History Geography" example:"History"`
	ISBN      string `form:"isbn" binding:"omitempty,max=20" example:"9787115428028"`
	Author    string `form:"author" binding:"omitempty,max=100" example:"吕思勉"`
	Publisher string `form:"publisher" binding:"omitempty,max=100" example:"中华书局"`
	Page      int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
}

// CreateAuthorRequest HTTP创建作者请求(管理员)
type CreateAuthorRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"吕思勉"`
}

// CreatePublisherRequest HTTP创建出版社请求(管理员)
type CreatePublisherRequest struct {
	Name    string `json:"name" binding:"required,max=100" example:"中华书局"`
	Address string `json:"address" binding:"omitempty,max=255" example:"北京市丰台区太平桥西里38号"`
	Phone   string `json:"phone" binding:"omitempty,max=20" example:"010-63459999"`
}
