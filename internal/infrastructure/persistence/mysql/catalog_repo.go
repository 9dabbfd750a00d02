package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
	apperrors "github.com/xiebiao/campus-bookstore/pkg/errors"
)

// catalogRepository 图书目录仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/catalog/repository.go定义的接口
// 2. 图书、作者、出版社属于同一个目录聚合,共用一个仓储
// 3. 库存调整使用条件UPDATE原子执行,不依赖数据库触发器
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository 创建图书目录仓储
func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &catalogRepository{db: db}
}

// CreateBook 创建图书(含作者关联)
func (r *catalogRepository) CreateBook(ctx context.Context, b *catalog.Book) error {
	model := &BookModel{
		ISBN:        b.ISBN,
		Title:       b.Title,
		PubYear:     b.PubYear,
		Price:       b.Price,
		Stock:       b.Stock,
		Threshold:   b.Threshold,
		Category:    string(b.Category),
		PublisherID: b.PublisherID,
	}
	for _, a := range b.Authors {
		model.Authors = append(model.Authors, AuthorModel{ID: a.ID})
	}

	// Omit("Authors.*"):只写book_authors关联表,不回写作者记录本身
	db := getDB(ctx, r.db)
	if err := db.Omit("Authors.*").Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrISBNDuplicate
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByISBN 根据ISBN查找图书(含作者)
func (r *catalogRepository) FindByISBN(ctx context.Context, isbn string) (*catalog.Book, error) {
	var model BookModel
	err := getDB(ctx, r.db).Preload("Authors").Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// LockByISBN 悲观锁查询图书(用于结算和进货确认)
// SELECT FOR UPDATE锁定行,防止并发超卖;只锁图书行,不加载作者
func (r *catalogRepository) LockByISBN(ctx context.Context, isbn string) (*catalog.Book, error) {
	var model BookModel
	db := getDB(ctx, r.db)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("isbn = ?", isbn).First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "锁定图书失败")
	}

	return toBookEntity(&model), nil
}

// UpdateBook 部分更新图书
// 只更新upd中非nil的字段,单次UPDATE完成;AuthorIDs非nil时整体替换作者关联
func (r *catalogRepository) UpdateBook(ctx context.Context, isbn string, upd catalog.BookUpdate) error {
	db := getDB(ctx, r.db)

	var model BookModel
	if err := db.Where("isbn = ?", isbn).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.ErrBookNotFound
		}
		return apperrors.Wrap(err, "查询图书失败")
	}

	values := map[string]interface{}{}
	if upd.Title != nil {
		values["title"] = *upd.Title
	}
	if upd.PubYear != nil {
		values["pub_year"] = *upd.PubYear
	}
	if upd.Price != nil {
		values["price"] = *upd.Price
	}
	if upd.Stock != nil {
		values["stock"] = *upd.Stock
	}
	if upd.Threshold != nil {
		values["threshold"] = *upd.Threshold
	}
	if upd.Category != nil {
		values["category"] = string(*upd.Category)
	}
	if upd.PublisherID != nil {
		values["publisher_id"] = *upd.PublisherID
	}

	if len(values) > 0 {
		if err := db.Model(&model).Updates(values).Error; err != nil {
			return apperrors.Wrap(err, "更新图书失败")
		}
	}

	if upd.AuthorIDs != nil {
		authors := make([]AuthorModel, len(upd.AuthorIDs))
		for i, id := range upd.AuthorIDs {
			authors[i] = AuthorModel{ID: id}
		}
		if err := db.Model(&model).Association("Authors").Replace(&authors); err != nil {
			return apperrors.Wrap(err, "更新图书作者失败")
		}
	}

	return nil
}

// AdjustStock 原子调整库存
// UPDATE books SET stock = stock + delta WHERE isbn = ? AND stock + delta >= 0
// 条件更新防止库存为负,是库存不变式的唯一权威检查点
func (r *catalogRepository) AdjustStock(ctx context.Context, isbn string, delta int) error {
	db := getDB(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("isbn = ?", isbn).
		Where("stock + ? >= 0", delta).
		Update("stock", gorm.Expr("stock + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新库存失败")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在,或者库存不足,再查一次确定原因
		var model BookModel
		if err := db.Where("isbn = ?", isbn).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return catalog.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}
		return catalog.ErrInsufficientStock
	}

	return nil
}

// Search 条件查询图书列表
// 标题/作者/出版社模糊匹配,分类和ISBN精确匹配,条件之间AND组合
func (r *catalogRepository) Search(ctx context.Context, params catalog.SearchParams) ([]*catalog.Book, int64, error) {
	var models []BookModel
	var total int64

	query := getDB(ctx, r.db).Model(&BookModel{})

	if params.Title != "" {
		query = query.Where("books.title LIKE ?", "%"+params.Title+"%")
	}
	if params.ISBN != "" {
		query = query.Where("books.isbn = ?", params.ISBN)
	}
	if params.Category != "" {
		query = query.Where("books.category = ?", string(params.Category))
	}
	if params.Publisher != "" {
		query = query.
			Joins("JOIN publishers ON publishers.id = books.publisher_id").
			Where("publishers.name LIKE ?", "%"+params.Publisher+"%")
	}
	if params.Author != "" {
		// 一本书多个作者时DISTINCT去重
		query = query.
			Joins("JOIN book_authors ON book_authors.book_model_id = books.id").
			Joins("JOIN authors ON authors.id = book_authors.author_model_id").
			Where("authors.name LIKE ?", "%"+params.Author+"%").
			Distinct("books.*")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	offset := (params.Page - 1) * params.PageSize
	err := query.Preload("Authors").
		Order("books.title ASC").
		Limit(params.PageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*catalog.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// CreateAuthor 创建作者
func (r *catalogRepository) CreateAuthor(ctx context.Context, a *catalog.Author) error {
	model := &AuthorModel{Name: a.Name}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	return nil
}

// ListAuthors 查询所有作者
func (r *catalogRepository) ListAuthors(ctx context.Context) ([]*catalog.Author, error) {
	var models []AuthorModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*catalog.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// FindAuthorsByIDs 批量查找作者
func (r *catalogRepository) FindAuthorsByIDs(ctx context.Context, ids []uint) ([]*catalog.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []AuthorModel
	if err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	authors := make([]*catalog.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// CreatePublisher 创建出版社
func (r *catalogRepository) CreatePublisher(ctx context.Context, p *catalog.Publisher) error {
	model := &PublisherModel{
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建出版社失败")
	}
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	return nil
}

// ListPublishers 查询所有出版社
func (r *catalogRepository) ListPublishers(ctx context.Context) ([]*catalog.Publisher, error) {
	var models []PublisherModel
	if err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询出版社列表失败")
	}

	publishers := make([]*catalog.Publisher, len(models))
	for i := range models {
		publishers[i] = toPublisherEntity(&models[i])
	}
	return publishers, nil
}

// FindPublisherByID 根据ID查找出版社
func (r *catalogRepository) FindPublisherByID(ctx context.Context, id uint) (*catalog.Publisher, error) {
	var model PublisherModel
	err := getDB(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrPublisherNotFound
		}
		return nil, apperrors.Wrap(err, "查询出版社失败")
	}

	return toPublisherEntity(&model), nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *catalog.Book {
	b := &catalog.Book{
		ID:          model.ID,
		ISBN:        model.ISBN,
		Title:       model.Title,
		PubYear:     model.PubYear,
		Price:       model.Price,
		Stock:       model.Stock,
		Threshold:   model.Threshold,
		Category:    catalog.Category(model.Category),
		PublisherID: model.PublisherID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	for i := range model.Authors {
		b.Authors = append(b.Authors, *toAuthorEntity(&model.Authors[i]))
	}
	return b
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *catalog.Author {
	return &catalog.Author{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}

// toPublisherEntity GORM模型 → 领域实体
func toPublisherEntity(model *PublisherModel) *catalog.Publisher {
	return &catalog.Publisher{
		ID:        model.ID,
		Name:      model.Name,
		Address:   model.Address,
		Phone:     model.Phone,
		CreatedAt: model.CreatedAt,
	}
}
