package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/campus-bookstore/internal/domain/cart"
	"github.com/xiebiao/campus-bookstore/internal/domain/user"
)

// passthroughTx 直通事务管理器:单元测试中直接执行函数体
type passthroughTx struct{}

func (passthroughTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeUserRepo 内存版用户仓储
type fakeUserRepo struct {
	users  map[string]*user.User // username → user
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if _, ok := r.users[u.Username]; ok {
		return user.ErrUsernameDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id uint, upd user.ProfileUpdate) error {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	return nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id uint, role user.Role) error {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*user.User, error) {
	list := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		list = append(list, u)
	}
	return list, nil
}

// fakeCartRepo 内存版购物车仓储(注册场景只用到Create)
type fakeCartRepo struct {
	carts map[uint]*cart.Cart // userID → cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[uint]*cart.Cart)}
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

func (r *fakeCartRepo) Items(ctx context.Context, cartID uint) ([]cart.Item, error) { return nil, nil }

func (r *fakeCartRepo) Lines(ctx context.Context, cartID uint) ([]cart.Line, error) { return nil, nil }

func (r *fakeCartRepo) ItemQuantity(ctx context.Context, cartID uint, isbn string) (int, error) {
	return 0, nil
}

func (r *fakeCartRepo) AddQuantity(ctx context.Context, cartID uint, isbn string, quantity int) error {
	return nil
}

func (r *fakeCartRepo) RemoveItem(ctx context.Context, cartID uint, isbn string) error { return nil }

func (r *fakeCartRepo) Clear(ctx context.Context, cartID uint) error { return nil }

// TestSignupUseCase_Execute 测试注册:用户与购物车同时创建
func TestSignupUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("注册成功同时创建购物车", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		cartRepo := newFakeCartRepo()
		uc := NewSignupUseCase(user.NewService(userRepo), cartRepo, passthroughTx{})

		resp, err := uc.Execute(ctx, SignupRequest{
			Username:  "zhangsan",
			Password:  "pass1234",
			FirstName: "三",
			LastName:  "张",
			Email:     "zhangsan@example.com",
			Phone:     "13800138000",
			Address:   "大学城1号",
		})
		require.NoError(t, err)

		assert.NotZero(t, resp.User.ID)
		assert.Equal(t, "Customer", resp.User.Role)

		// 购物车已创建
		c, err := cartRepo.FindByUserID(ctx, resp.User.ID)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, c.UserID)
	})

	t.Run("注册失败不创建购物车", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		cartRepo := newFakeCartRepo()
		uc := NewSignupUseCase(user.NewService(userRepo), cartRepo, passthroughTx{})

		_, err := uc.Execute(ctx, SignupRequest{
			Username: "zhangsan",
			Password: "weak", // 强度不足
			Email:    "z@example.com",
		})
		require.Error(t, err)
		assert.Empty(t, cartRepo.carts)
	})
}

// TestPromoteUserUseCase_Execute 测试提升管理员
func TestPromoteUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*PromoteUserUseCase, *fakeUserRepo, uint) {
		userRepo := newFakeUserRepo()
		svc := user.NewService(userRepo)
		u, err := svc.Register(ctx, "zhangsan", "pass1234", "三", "张", "z@example.com", "", "")
		require.NoError(t, err)
		return NewPromoteUserUseCase(userRepo), userRepo, u.ID
	}

	t.Run("正常提升", func(t *testing.T) {
		uc, userRepo, id := setup(t)

		info, err := uc.Execute(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Admin", info.Role)

		stored, _ := userRepo.FindByID(ctx, id)
		assert.Equal(t, user.RoleAdmin, stored.Role)
	})

	t.Run("重复提升应失败", func(t *testing.T) {
		uc, _, id := setup(t)

		_, err := uc.Execute(ctx, id)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, id)
		assert.ErrorIs(t, err, user.ErrAlreadyAdmin)
	})

	t.Run("用户不存在", func(t *testing.T) {
		uc, _, _ := setup(t)

		_, err := uc.Execute(ctx, 99)
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})
}
