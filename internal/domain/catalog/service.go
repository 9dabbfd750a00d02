package catalog

import (
	"context"
	"regexp"
)

// Service 图书目录领域服务接口
// 封装跨实体的业务规则校验(分类枚举、出版社存在性、作者关联)
type Service interface {
	// AddBook 新增图书(管理员)
	// 业务规则:
	// - ISBN格式必须合法(10位或13位数字)
	// - 价格必须在1-999999分之间
	// - 库存和补货阈值必须>=0
	// - 分类必须属于固定枚举
	// - 出版社和作者必须已存在
	// - ISBN不能重复
	AddBook(ctx context.Context, book *Book, authorIDs []uint) (*Book, error)

	// UpdateBook 部分更新图书(管理员)
	// 整体校验通过后才执行更新
	UpdateBook(ctx context.Context, isbn string, upd BookUpdate) error

	// GetBook 根据ISBN获取图书详情(含作者)
	GetBook(ctx context.Context, isbn string) (*Book, error)

	// Search 条件查询图书
	Search(ctx context.Context, params SearchParams) ([]*Book, int64, error)

	// CreateAuthor 创建作者(管理员)
	CreateAuthor(ctx context.Context, name string) (*Author, error)

	// ListAuthors 查询所有作者
	ListAuthors(ctx context.Context) ([]*Author, error)

	// CreatePublisher 创建出版社(管理员)
	CreatePublisher(ctx context.Context, name, address, phone string) (*Publisher, error)

	// ListPublishers 查询所有出版社
	ListPublishers(ctx context.Context) ([]*Publisher, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书目录领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddBook 新增图书
func (s *service) AddBook(ctx context.Context, book *Book, authorIDs []uint) (*Book, error) {
	// 1. 字段校验
	if !isValidISBN(book.ISBN) {
		return nil, ErrInvalidISBN
	}
	if book.Title == "" {
		return nil, ErrInvalidTitle
	}
	if book.Price < 1 || book.Price > maxPrice {
		return nil, ErrInvalidPrice
	}
	if book.Stock < 0 {
		return nil, ErrInvalidStock
	}
	if book.Threshold < 0 {
		return nil, ErrInvalidThreshold
	}
	if !book.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	// 2. 外键存在性校验
	if _, err := s.repo.FindPublisherByID(ctx, book.PublisherID); err != nil {
		return nil, err
	}

	if len(authorIDs) > 0 {
		authors, err := s.repo.FindAuthorsByIDs(ctx, authorIDs)
		if err != nil {
			return nil, err
		}
		if len(authors) != len(authorIDs) {
			return nil, ErrAuthorNotFound
		}
		book.Authors = make([]Author, len(authors))
		for i, a := range authors {
			book.Authors[i] = *a
		}
	}

	// 3. 持久化(ISBN唯一性由数据库索引保证,重复时Repository返回ErrISBNDuplicate)
	if err := s.repo.CreateBook(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// UpdateBook 部分更新图书
func (s *service) UpdateBook(ctx context.Context, isbn string, upd BookUpdate) error {
	if upd.Empty() {
		return nil
	}

	// 整体校验,任一字段非法则整个更新不执行
	if err := upd.Validate(); err != nil {
		return err
	}

	if upd.PublisherID != nil {
		if _, err := s.repo.FindPublisherByID(ctx, *upd.PublisherID); err != nil {
			return err
		}
	}

	if upd.AuthorIDs != nil && len(upd.AuthorIDs) > 0 {
		authors, err := s.repo.FindAuthorsByIDs(ctx, upd.AuthorIDs)
		if err != nil {
			return err
		}
		if len(authors) != len(upd.AuthorIDs) {
			return ErrAuthorNotFound
		}
	}

	return s.repo.UpdateBook(ctx, isbn, upd)
}

// GetBook 根据ISBN获取图书详情
func (s *service) GetBook(ctx context.Context, isbn string) (*Book, error) {
	return s.repo.FindByISBN(ctx, isbn)
}

// Search 条件查询图书
func (s *service) Search(ctx context.Context, params SearchParams) ([]*Book, int64, error) {
	if params.Category != "" && !params.Category.Valid() {
		return nil, 0, ErrInvalidCategory
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	return s.repo.Search(ctx, params)
}

// CreateAuthor 创建作者
func (s *service) CreateAuthor(ctx context.Context, name string) (*Author, error) {
	if name == "" {
		return nil, ErrInvalidTitle
	}
	author := &Author{Name: name}
	if err := s.repo.CreateAuthor(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// ListAuthors 查询所有作者
func (s *service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return s.repo.ListAuthors(ctx)
}

// CreatePublisher 创建出版社
func (s *service) CreatePublisher(ctx context.Context, name, address, phone string) (*Publisher, error) {
	if name == "" {
		return nil, ErrInvalidTitle
	}
	publisher := &Publisher{Name: name, Address: address, Phone: phone}
	if err := s.repo.CreatePublisher(ctx, publisher); err != nil {
		return nil, err
	}
	return publisher, nil
}

// ListPublishers 查询所有出版社
func (s *service) ListPublishers(ctx context.Context) ([]*Publisher, error) {
	return s.repo.ListPublishers(ctx)
}

// isValidISBN 校验ISBN格式
// 支持ISBN-10和ISBN-13,允许分隔符(978-7-115-42802-8)
// 简化实现:只检查去除分隔符后的位数(生产环境应校验校验位)
func isValidISBN(isbn string) bool {
	re := regexp.MustCompile(`[^0-9Xx]`)
	clean := re.ReplaceAllString(isbn, "")

	length := len(clean)
	return length == 10 || length == 13
}
