package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/campus-bookstore/internal/domain/cart"
	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
	"github.com/xiebiao/campus-bookstore/internal/domain/order"
	"github.com/xiebiao/campus-bookstore/pkg/mq"
)

// passthroughTx 直通事务管理器:单元测试中直接执行函数体
type passthroughTx struct{}

func (passthroughTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeOrderRepo 内存版订单仓储
type fakeOrderRepo struct {
	orders map[uint]*order.Order
	nextID uint
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*order.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	o.ID = r.nextID
	r.nextID++
	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, o *order.Order) error {
	stored, ok := r.orders[o.ID]
	if !ok {
		return order.ErrOrderNotFound
	}
	stored.Status = o.Status
	return nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var list []*order.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			list = append(list, o)
		}
	}
	return list, int64(len(list)), nil
}

// fakeCartRepo 内存版购物车仓储
type fakeCartRepo struct {
	carts map[uint]*cart.Cart  // userID → cart
	items map[uint][]cart.Item // cartID → items
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{
		carts: make(map[uint]*cart.Cart),
		items: make(map[uint][]cart.Item),
	}
}

func (r *fakeCartRepo) Create(ctx context.Context, userID uint) (*cart.Cart, error) {
	c := &cart.Cart{ID: uint(len(r.carts) + 1), UserID: userID}
	r.carts[userID] = c
	return c, nil
}

func (r *fakeCartRepo) FindByUserID(ctx context.Context, userID uint) (*cart.Cart, error) {
	c, ok := r.carts[userID]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	return c, nil
}

func (r *fakeCartRepo) Items(ctx context.Context, cartID uint) ([]cart.Item, error) {
	return r.items[cartID], nil
}

func (r *fakeCartRepo) Lines(ctx context.Context, cartID uint) ([]cart.Line, error) {
	return nil, nil
}

func (r *fakeCartRepo) ItemQuantity(ctx context.Context, cartID uint, isbn string) (int, error) {
	for _, item := range r.items[cartID] {
		if item.ISBN == isbn {
			return item.Quantity, nil
		}
	}
	return 0, nil
}

func (r *fakeCartRepo) AddQuantity(ctx context.Context, cartID uint, isbn string, quantity int) error {
	for i, item := range r.items[cartID] {
		if item.ISBN == isbn {
			r.items[cartID][i].Quantity += quantity
			return nil
		}
	}
	r.items[cartID] = append(r.items[cartID], cart.Item{CartID: cartID, ISBN: isbn, Quantity: quantity})
	return nil
}

func (r *fakeCartRepo) RemoveItem(ctx context.Context, cartID uint, isbn string) error {
	for i, item := range r.items[cartID] {
		if item.ISBN == isbn {
			r.items[cartID] = append(r.items[cartID][:i], r.items[cartID][i+1:]...)
			return nil
		}
	}
	return cart.ErrItemNotFound
}

func (r *fakeCartRepo) Clear(ctx context.Context, cartID uint) error {
	r.items[cartID] = nil
	return nil
}

// fakeBookRepo 内存版图书仓储(只实现结算用到的方法)
type fakeBookRepo struct {
	books map[string]*catalog.Book
}

func newFakeBookRepo(books ...*catalog.Book) *fakeBookRepo {
	r := &fakeBookRepo{books: make(map[string]*catalog.Book)}
	for _, b := range books {
		r.books[b.ISBN] = b
	}
	return r
}

func (r *fakeBookRepo) CreateBook(ctx context.Context, book *catalog.Book) error {
	r.books[book.ISBN] = book
	return nil
}

func (r *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*catalog.Book, error) {
	b, ok := r.books[isbn]
	if !ok {
		return nil, catalog.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) LockByISBN(ctx context.Context, isbn string) (*catalog.Book, error) {
	return r.FindByISBN(ctx, isbn)
}

func (r *fakeBookRepo) UpdateBook(ctx context.Context, isbn string, upd catalog.BookUpdate) error {
	return nil
}

func (r *fakeBookRepo) AdjustStock(ctx context.Context, isbn string, delta int) error {
	b, ok := r.books[isbn]
	if !ok {
		return catalog.ErrBookNotFound
	}
	if b.Stock+delta < 0 {
		return catalog.ErrInsufficientStock
	}
	b.Stock += delta
	return nil
}

func (r *fakeBookRepo) Search(ctx context.Context, params catalog.SearchParams) ([]*catalog.Book, int64, error) {
	return nil, 0, nil
}

func (r *fakeBookRepo) CreateAuthor(ctx context.Context, author *catalog.Author) error { return nil }

func (r *fakeBookRepo) ListAuthors(ctx context.Context) ([]*catalog.Author, error) { return nil, nil }

func (r *fakeBookRepo) FindAuthorsByIDs(ctx context.Context, ids []uint) ([]*catalog.Author, error) {
	return nil, nil
}

func (r *fakeBookRepo) CreatePublisher(ctx context.Context, publisher *catalog.Publisher) error {
	return nil
}

func (r *fakeBookRepo) ListPublishers(ctx context.Context) ([]*catalog.Publisher, error) {
	return nil, nil
}

func (r *fakeBookRepo) FindPublisherByID(ctx context.Context, id uint) (*catalog.Publisher, error) {
	return nil, catalog.ErrPublisherNotFound
}

// recordingPublisher 记录发布的事件
type recordingPublisher struct {
	topics []string
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, payload interface{}) error {
	p.topics = append(p.topics, topic)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

var _ mq.EventPublisher = (*recordingPublisher)(nil)

// setupCheckout 准备:用户1的购物车中有2本Go实战(79元)和1本计算机网络(139元)
func setupCheckout(t *testing.T) (*CheckoutUseCase, *fakeOrderRepo, *fakeCartRepo, *fakeBookRepo, *recordingPublisher) {
	ctx := context.Background()

	bookRepo := newFakeBookRepo(
		catalog.NewBook("9787115428028", "Go语言实战", 2017, 7900, 10, 3, catalog.CategoryScience, 1),
		catalog.NewBook("9787111558422", "计算机网络", 2022, 13900, 5, 2, catalog.CategoryScience, 1),
	)

	cartRepo := newFakeCartRepo()
	c, err := cartRepo.Create(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, cartRepo.AddQuantity(ctx, c.ID, "9787115428028", 2))
	require.NoError(t, cartRepo.AddQuantity(ctx, c.ID, "9787111558422", 1))

	orderRepo := newFakeOrderRepo()
	publisher := &recordingPublisher{}
	uc := NewCheckoutUseCase(orderRepo, cartRepo, bookRepo, passthroughTx{}, publisher)

	return uc, orderRepo, cartRepo, bookRepo, publisher
}

// TestCheckoutUseCase_Execute 测试购物车结算
func TestCheckoutUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("正常结算", func(t *testing.T) {
		uc, orderRepo, cartRepo, bookRepo, publisher := setupCheckout(t)

		resp, err := uc.Execute(ctx, CheckoutRequest{UserID: 1, CardNumber: "6222021234567890", CardExpiry: "12/27"})
		require.NoError(t, err)

		// 总额 = 2×7900 + 1×13900
		assert.Equal(t, int64(29700), resp.Total)
		assert.Equal(t, "297.00", resp.TotalYuan)
		assert.Equal(t, "已完成", resp.Status)

		// 订单落库且为终态
		stored, err := orderRepo.FindByID(ctx, resp.OrderID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, stored.Status)

		// 库存已扣减
		b1, _ := bookRepo.FindByISBN(ctx, "9787115428028")
		b2, _ := bookRepo.FindByISBN(ctx, "9787111558422")
		assert.Equal(t, 8, b1.Stock)
		assert.Equal(t, 4, b2.Stock)

		// 购物车被清空但保留
		c, err := cartRepo.FindByUserID(ctx, 1)
		require.NoError(t, err)
		items, _ := cartRepo.Items(ctx, c.ID)
		assert.Empty(t, items)

		// 发布了订单完成事件
		assert.Equal(t, []string{"order.completed"}, publisher.topics)
	})

	t.Run("空购物车拒绝结算", func(t *testing.T) {
		uc, orderRepo, cartRepo, _, publisher := setupCheckout(t)

		c, _ := cartRepo.FindByUserID(context.Background(), 1)
		require.NoError(t, cartRepo.Clear(ctx, c.ID))

		_, err := uc.Execute(ctx, CheckoutRequest{UserID: 1})
		assert.ErrorIs(t, err, cart.ErrCartEmpty)
		assert.Empty(t, orderRepo.orders, "不应创建订单")
		assert.Empty(t, publisher.topics, "不应发布事件")
	})

	t.Run("库存不足拒绝结算", func(t *testing.T) {
		uc, orderRepo, _, bookRepo, publisher := setupCheckout(t)

		// 锁定时库存只剩1本,购物车里要2本
		bookRepo.books["9787115428028"].Stock = 1

		_, err := uc.Execute(ctx, CheckoutRequest{UserID: 1})
		assert.ErrorIs(t, err, catalog.ErrInsufficientStock)

		assert.Empty(t, orderRepo.orders, "不应创建订单")
		assert.Equal(t, 1, bookRepo.books["9787115428028"].Stock, "库存不应被扣减")
		assert.Equal(t, 5, bookRepo.books["9787111558422"].Stock)
		assert.Empty(t, publisher.topics)
	})

	t.Run("结算使用数据库当前价格", func(t *testing.T) {
		uc, orderRepo, _, bookRepo, _ := setupCheckout(t)

		// 结算前调价
		bookRepo.books["9787115428028"].Price = 9900

		resp, err := uc.Execute(ctx, CheckoutRequest{UserID: 1})
		require.NoError(t, err)

		// 总额 = 2×9900 + 1×13900,以锁定时刻的价格为准
		assert.Equal(t, int64(33700), resp.Total)

		stored, _ := orderRepo.FindByID(ctx, resp.OrderID)
		assert.Equal(t, int64(33700), stored.CalculateTotal(), "明细单价是结算时的快照")
	})

	t.Run("购物车不存在", func(t *testing.T) {
		uc, _, _, _, _ := setupCheckout(t)

		_, err := uc.Execute(ctx, CheckoutRequest{UserID: 99})
		assert.ErrorIs(t, err, cart.ErrCartNotFound)
	})
}
