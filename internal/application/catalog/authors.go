package catalog

import (
	"context"

	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
)

// CreateAuthorUseCase 创建作者用例(管理员)
type CreateAuthorUseCase struct {
	catalogService catalog.Service
}

// NewCreateAuthorUseCase 创建作者用例
func NewCreateAuthorUseCase(catalogService catalog.Service) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{catalogService: catalogService}
}

// Execute 执行创建
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, name string) (*AuthorInfo, error) {
	a, err := uc.catalogService.CreateAuthor(ctx, name)
	if err != nil {
		return nil, err
	}

	info := toAuthorInfo(a)
	return &info, nil
}

// ListAuthorsUseCase 作者列表用例
type ListAuthorsUseCase struct {
	catalogService catalog.Service
}

// NewListAuthorsUseCase 创建作者列表用例
func NewListAuthorsUseCase(catalogService catalog.Service) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{catalogService: catalogService}
}

// Execute 执行查询
func (uc *ListAuthorsUseCase) Execute(ctx context.Context) ([]AuthorInfo, error) {
	authors, err := uc.catalogService.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]AuthorInfo, len(authors))
	for i, a := range authors {
		infos[i] = toAuthorInfo(a)
	}
	return infos, nil
}
