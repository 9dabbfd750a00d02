package catalog

import (
	"context"

	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
)

// CreatePublisherUseCase 创建出版社用例(管理员)
type CreatePublisherUseCase struct {
	catalogService catalog.Service
}

// NewCreatePublisherUseCase 创建出版社用例
func NewCreatePublisherUseCase(catalogService catalog.Service) *CreatePublisherUseCase {
	return &CreatePublisherUseCase{catalogService: catalogService}
}

// CreatePublisherRequest 创建出版社请求DTO
type CreatePublisherRequest struct {
	Name    string
	Address string
	Phone   string
}

// Execute 执行创建
func (uc *CreatePublisherUseCase) Execute(ctx context.Context, req CreatePublisherRequest) (*PublisherInfo, error) {
	p, err := uc.catalogService.CreatePublisher(ctx, req.Name, req.Address, req.Phone)
	if err != nil {
		return nil, err
	}

	info := toPublisherInfo(p)
	return &info, nil
}

// ListPublishersUseCase 出版社列表用例
type ListPublishersUseCase struct {
	catalogService catalog.Service
}

// NewListPublishersUseCase 创建出版社列表用例
func NewListPublishersUseCase(catalogService catalog.Service) *ListPublishersUseCase {
	return &ListPublishersUseCase{catalogService: catalogService}
}

// Execute 执行查询
func (uc *ListPublishersUseCase) Execute(ctx context.Context) ([]PublisherInfo, error) {
	publishers, err := uc.catalogService.ListPublishers(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]PublisherInfo, len(publishers))
	for i, p := range publishers {
		infos[i] = toPublisherInfo(p)
	}
	return infos, nil
}
