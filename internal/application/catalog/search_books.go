package catalog

import (
	"context"

	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
)

// SearchBooksUseCase 图书搜索用例(公开接口)
type SearchBooksUseCase struct {
	catalogService catalog.Service
}

// NewSearchBooksUseCase 创建图书搜索用例
func NewSearchBooksUseCase(catalogService catalog.Service) *SearchBooksUseCase {
	return &SearchBooksUseCase{catalogService: catalogService}
}

// SearchBooksRequest 搜索请求DTO
// 标题/作者/出版社模糊匹配,分类和ISBN精确匹配,条件AND组合
type SearchBooksRequest struct {
	Title     string
	Category  string
	ISBN      string
	Author    string
	Publisher string
	Page      int
	PageSize  int
}

// SearchBooksResponse 搜索响应DTO
type SearchBooksResponse struct {
	Books    []BookInfo `json:"books"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// Execute 执行搜索
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*SearchBooksResponse, error) {
	params := catalog.SearchParams{
		Title:     req.Title,
		Category:  catalog.Category(req.Category),
		ISBN:      req.ISBN,
		Author:    req.Author,
		Publisher: req.Publisher,
		Page:      req.Page,
		PageSize:  req.PageSize,
	}

	books, total, err := uc.catalogService.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	infos := make([]BookInfo, len(books))
	for i, b := range books {
		infos[i] = toBookInfo(b)
	}

	// Service对页码做了兜底,此处回读实际生效值
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}

	return &SearchBooksResponse{
		Books:    infos,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

// GetBookUseCase 图书详情用例(公开接口)
type GetBookUseCase struct {
	catalogService catalog.Service
}

// NewGetBookUseCase 创建图书详情用例
func NewGetBookUseCase(catalogService catalog.Service) *GetBookUseCase {
	return &GetBookUseCase{catalogService: catalogService}
}

// Execute 执行查询
func (uc *GetBookUseCase) Execute(ctx context.Context, isbn string) (*BookInfo, error) {
	b, err := uc.catalogService.GetBook(ctx, isbn)
	if err != nil {
		return nil, err
	}

	info := toBookInfo(b)
	return &info, nil
}
