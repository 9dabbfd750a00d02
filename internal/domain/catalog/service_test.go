package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogRepo 内存版图书目录仓储,用于领域服务单元测试
type fakeCatalogRepo struct {
	books      map[string]*Book // isbn → book
	authors    map[uint]*Author
	publishers map[uint]*Publisher

	lastSearch SearchParams // 记录透传给仓储的搜索参数
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		books:      make(map[string]*Book),
		authors:    make(map[uint]*Author),
		publishers: make(map[uint]*Publisher),
	}
}

func (r *fakeCatalogRepo) CreateBook(ctx context.Context, book *Book) error {
	if _, ok := r.books[book.ISBN]; ok {
		return ErrISBNDuplicate
	}
	book.ID = uint(len(r.books) + 1)
	r.books[book.ISBN] = book
	return nil
}

func (r *fakeCatalogRepo) FindByISBN(ctx context.Context, isbn string) (*Book, error) {
	b, ok := r.books[isbn]
	if !ok {
		return nil, ErrBookNotFound
	}
	return b, nil
}

func (r *fakeCatalogRepo) LockByISBN(ctx context.Context, isbn string) (*Book, error) {
	return r.FindByISBN(ctx, isbn)
}

func (r *fakeCatalogRepo) UpdateBook(ctx context.Context, isbn string, upd BookUpdate) error {
	b, err := r.FindByISBN(ctx, isbn)
	if err != nil {
		return err
	}
	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Price != nil {
		b.Price = *upd.Price
	}
	if upd.Stock != nil {
		b.Stock = *upd.Stock
	}
	if upd.Threshold != nil {
		b.Threshold = *upd.Threshold
	}
	if upd.Category != nil {
		b.Category = *upd.Category
	}
	if upd.PublisherID != nil {
		b.PublisherID = *upd.PublisherID
	}
	return nil
}

func (r *fakeCatalogRepo) AdjustStock(ctx context.Context, isbn string, delta int) error {
	b, err := r.FindByISBN(ctx, isbn)
	if err != nil {
		return err
	}
	if b.Stock+delta < 0 {
		return ErrInsufficientStock
	}
	b.Stock += delta
	return nil
}

func (r *fakeCatalogRepo) Search(ctx context.Context, params SearchParams) ([]*Book, int64, error) {
	r.lastSearch = params
	list := make([]*Book, 0, len(r.books))
	for _, b := range r.books {
		list = append(list, b)
	}
	return list, int64(len(list)), nil
}

func (r *fakeCatalogRepo) CreateAuthor(ctx context.Context, author *Author) error {
	author.ID = uint(len(r.authors) + 1)
	r.authors[author.ID] = author
	return nil
}

func (r *fakeCatalogRepo) ListAuthors(ctx context.Context) ([]*Author, error) {
	list := make([]*Author, 0, len(r.authors))
	for _, a := range r.authors {
		list = append(list, a)
	}
	return list, nil
}

func (r *fakeCatalogRepo) FindAuthorsByIDs(ctx context.Context, ids []uint) ([]*Author, error) {
	var found []*Author
	for _, id := range ids {
		if a, ok := r.authors[id]; ok {
			found = append(found, a)
		}
	}
	return found, nil
}

func (r *fakeCatalogRepo) CreatePublisher(ctx context.Context, publisher *Publisher) error {
	publisher.ID = uint(len(r.publishers) + 1)
	r.publishers[publisher.ID] = publisher
	return nil
}

func (r *fakeCatalogRepo) ListPublishers(ctx context.Context) ([]*Publisher, error) {
	list := make([]*Publisher, 0, len(r.publishers))
	for _, p := range r.publishers {
		list = append(list, p)
	}
	return list, nil
}

func (r *fakeCatalogRepo) FindPublisherByID(ctx context.Context, id uint) (*Publisher, error) {
	p, ok := r.publishers[id]
	if !ok {
		return nil, ErrPublisherNotFound
	}
	return p, nil
}

// setupCatalog 准备一个有出版社和作者的仓储
func setupCatalog(t *testing.T) (Service, *fakeCatalogRepo) {
	repo := newFakeCatalogRepo()
	svc := NewService(repo)

	_, err := svc.CreatePublisher(context.Background(), "人民邮电出版社", "北京市", "010-12345678")
	require.NoError(t, err)
	_, err = svc.CreateAuthor(context.Background(), "William Kennedy")
	require.NoError(t, err)

	return svc, repo
}

// TestService_AddBook 测试新增图书的业务规则校验
func TestService_AddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("正常新增", func(t *testing.T) {
		svc, repo := setupCatalog(t)

		b := NewBook("9787115428028", "Go语言实战", 2017, 7900, 10, 3, CategoryScience, 1)
		created, err := svc.AddBook(ctx, b, []uint{1})
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.Len(t, created.Authors, 1)
		assert.Equal(t, "William Kennedy", created.Authors[0].Name)
		_, ok := repo.books["9787115428028"]
		assert.True(t, ok)
	})

	t.Run("ISBN格式错误", func(t *testing.T) {
		svc, _ := setupCatalog(t)

		b := NewBook("12345", "Go语言实战", 2017, 7900, 10, 3, CategoryScience, 1)
		_, err := svc.AddBook(ctx, b, nil)
		assert.ErrorIs(t, err, ErrInvalidISBN)
	})

	t.Run("分类非法", func(t *testing.T) {
		svc, _ := setupCatalog(t)

		b := NewBook("9787115428028", "Go语言实战", 2017, 7900, 10, 3, Category("Fiction"), 1)
		_, err := svc.AddBook(ctx, b, nil)
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("出版社不存在", func(t *testing.T) {
		svc, _ := setupCatalog(t)

		b := NewBook("9787115428028", "Go语言实战", 2017, 7900, 10, 3, CategoryScience, 99)
		_, err := svc.AddBook(ctx, b, nil)
		assert.ErrorIs(t, err, ErrPublisherNotFound)
	})

	t.Run("作者不存在", func(t *testing.T) {
		svc, _ := setupCatalog(t)

		b := NewBook("9787115428028", "Go语言实战", 2017, 7900, 10, 3, CategoryScience, 1)
		_, err := svc.AddBook(ctx, b, []uint{1, 99})
		assert.ErrorIs(t, err, ErrAuthorNotFound)
	})

	t.Run("ISBN重复", func(t *testing.T) {
		svc, _ := setupCatalog(t)

		b1 := NewBook("9787115428028", "Go语言实战", 2017, 7900, 10, 3, CategoryScience, 1)
		_, err := svc.AddBook(ctx, b1, nil)
		require.NoError(t, err)

		b2 := NewBook("9787115428028", "另一本书", 2020, 9900, 5, 2, CategoryArt, 1)
		_, err = svc.AddBook(ctx, b2, nil)
		assert.ErrorIs(t, err, ErrISBNDuplicate)
	})
}

// TestService_UpdateBook 测试部分更新图书
func TestService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupCatalog(t)

	b := NewBook("9787115428028", "Go语言实战", 2017, 7900, 10, 3, CategoryScience, 1)
	_, err := svc.AddBook(ctx, b, nil)
	require.NoError(t, err)

	t.Run("只更新价格", func(t *testing.T) {
		price := int64(6900)
		err := svc.UpdateBook(ctx, "9787115428028", BookUpdate{Price: &price})
		require.NoError(t, err)

		updated := repo.books["9787115428028"]
		assert.Equal(t, int64(6900), updated.Price)
		assert.Equal(t, "Go语言实战", updated.Title, "未提供的字段不应被修改")
		assert.Equal(t, 10, updated.Stock)
	})

	t.Run("任一字段非法则整个更新不执行", func(t *testing.T) {
		title := "新书名"
		badPrice := int64(0)
		err := svc.UpdateBook(ctx, "9787115428028", BookUpdate{Title: &title, Price: &badPrice})
		assert.ErrorIs(t, err, ErrInvalidPrice)
		assert.Equal(t, "Go语言实战", repo.books["9787115428028"].Title)
	})

	t.Run("空更新直接返回", func(t *testing.T) {
		assert.NoError(t, svc.UpdateBook(ctx, "9787115428028", BookUpdate{}))
	})
}

// TestService_Search 测试搜索参数规整
func TestService_Search(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupCatalog(t)

	t.Run("分页参数默认值", func(t *testing.T) {
		_, _, err := svc.Search(ctx, SearchParams{Title: "Go"})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.lastSearch.Page)
		assert.Equal(t, 20, repo.lastSearch.PageSize)
	})

	t.Run("每页上限100", func(t *testing.T) {
		_, _, err := svc.Search(ctx, SearchParams{Page: 2, PageSize: 500})
		require.NoError(t, err)
		assert.Equal(t, 2, repo.lastSearch.Page)
		assert.Equal(t, 20, repo.lastSearch.PageSize)
	})

	t.Run("非法分类直接拒绝", func(t *testing.T) {
		_, _, err := svc.Search(ctx, SearchParams{Category: Category("Fiction")})
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})
}
