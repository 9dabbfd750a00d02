package catalog

import (
	"context"

	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
)

// AddBookUseCase 新增图书用例(管理员)
type AddBookUseCase struct {
	catalogService catalog.Service
}

// NewAddBookUseCase 创建新增图书用例
func NewAddBookUseCase(catalogService catalog.Service) *AddBookUseCase {
	return &AddBookUseCase{catalogService: catalogService}
}

// AddBookRequest 新增图书请求DTO
type AddBookRequest struct {
	ISBN        string
	Title       string
	PubYear     int
	Price       int64 // 分
	Stock       int
	Threshold   int
	Category    string
	PublisherID uint
	AuthorIDs   []uint
}

// Execute 执行新增
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*BookInfo, error) {
	b := catalog.NewBook(req.ISBN, req.Title, req.PubYear, req.Price,
		req.Stock, req.Threshold, catalog.Category(req.Category), req.PublisherID)

	created, err := uc.catalogService.AddBook(ctx, b, req.AuthorIDs)
	if err != nil {
		return nil, err
	}

	info := toBookInfo(created)
	return &info, nil
}

// UpdateBookUseCase 更新图书用例(管理员)
// 部分更新:nil字段不修改,整体校验通过后才执行
type UpdateBookUseCase struct {
	catalogService catalog.Service
}

// NewUpdateBookUseCase 创建更新图书用例
func NewUpdateBookUseCase(catalogService catalog.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{catalogService: catalogService}
}

// UpdateBookRequest 更新图书请求DTO
type UpdateBookRequest struct {
	Title       *string
	PubYear     *int
	Price       *int64
	Stock       *int
	Threshold   *int
	Category    *string
	PublisherID *uint
	AuthorIDs   []uint // nil表示作者不变,空切片表示清空
}

// Execute 执行更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, isbn string, req UpdateBookRequest) (*BookInfo, error) {
	upd := catalog.BookUpdate{
		Title:       req.Title,
		PubYear:     req.PubYear,
		Price:       req.Price,
		Stock:       req.Stock,
		Threshold:   req.Threshold,
		PublisherID: req.PublisherID,
		AuthorIDs:   req.AuthorIDs,
	}
	if req.Category != nil {
		cat := catalog.Category(*req.Category)
		upd.Category = &cat
	}

	if err := uc.catalogService.UpdateBook(ctx, isbn, upd); err != nil {
		return nil, err
	}

	// 返回更新后的完整图书
	b, err := uc.catalogService.GetBook(ctx, isbn)
	if err != nil {
		return nil, err
	}

	info := toBookInfo(b)
	return &info, nil
}
