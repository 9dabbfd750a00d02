package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo 内存版用户仓储,用于领域服务单元测试
type fakeUserRepo struct {
	users  map[string]*User // username → user
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error {
	if _, ok := r.users[u.Username]; ok {
		return ErrUsernameDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) error {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Address != nil {
		u.Address = *upd.Address
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	return nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id uint, role Role) error {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*User, error) {
	list := make([]*User, 0, len(r.users))
	for _, u := range r.users {
		list = append(list, u)
	}
	return list, nil
}

// TestService_Register 测试注册业务规则
func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		u, err := svc.Register(ctx, "zhangsan", "pass1234", "三", "张", "zhangsan@example.com", "13800138000", "大学城1号")
		require.NoError(t, err)

		assert.NotZero(t, u.ID)
		assert.Equal(t, RoleCustomer, u.Role)
		assert.NotEqual(t, "pass1234", u.Password, "密码必须加密存储")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("pass1234")))
	})

	t.Run("用户名过短应失败", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		_, err := svc.Register(ctx, "ab", "pass1234", "三", "张", "z@example.com", "", "")
		assert.ErrorIs(t, err, ErrInvalidUsername)
	})

	t.Run("邮箱格式错误应失败", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		_, err := svc.Register(ctx, "zhangsan", "pass1234", "三", "张", "not-an-email", "", "")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("弱密码应失败", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		// 过短
		_, err := svc.Register(ctx, "zhangsan", "abc1", "三", "张", "z@example.com", "", "")
		assert.ErrorIs(t, err, ErrWeakPassword)

		// 纯数字
		_, err = svc.Register(ctx, "zhangsan", "12345678", "三", "张", "z@example.com", "", "")
		assert.ErrorIs(t, err, ErrWeakPassword)

		// 纯字母
		_, err = svc.Register(ctx, "zhangsan", "abcdefgh", "三", "张", "z@example.com", "", "")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("用户名重复应失败", func(t *testing.T) {
		svc := NewService(newFakeUserRepo())

		_, err := svc.Register(ctx, "zhangsan", "pass1234", "三", "张", "z@example.com", "", "")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "zhangsan", "pass5678", "四", "李", "l@example.com", "", "")
		assert.ErrorIs(t, err, ErrUsernameDuplicate)
	})
}

// TestService_Authenticate 测试登录验证
func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewService(repo)

	_, err := svc.Register(ctx, "zhangsan", "pass1234", "三", "张", "z@example.com", "", "")
	require.NoError(t, err)

	t.Run("正确密码", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "zhangsan", "pass1234")
		require.NoError(t, err)
		assert.Equal(t, "zhangsan", u.Username)
	})

	t.Run("错误密码", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "zhangsan", "wrong999")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("用户不存在返回同一错误", func(t *testing.T) {
		// 防止用户名枚举:不区分"用户不存在"与"密码错误"
		_, err := svc.Authenticate(ctx, "nobody", "pass1234")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})
}

// TestService_UpdateProfile 测试个人信息部分更新
func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, *fakeUserRepo, *User) {
		repo := newFakeUserRepo()
		svc := NewService(repo)
		u, err := svc.Register(ctx, "zhangsan", "pass1234", "三", "张", "z@example.com", "13800138000", "大学城1号")
		require.NoError(t, err)
		return svc, repo, u
	}

	t.Run("只更新提供的字段", func(t *testing.T) {
		svc, repo, u := setup(t)

		email := "new@example.com"
		err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{Email: &email}, nil)
		require.NoError(t, err)

		updated, _ := repo.FindByID(ctx, u.ID)
		assert.Equal(t, "new@example.com", updated.Email)
		assert.Equal(t, "三", updated.FirstName, "未提供的字段不应被修改")
		assert.Equal(t, "13800138000", updated.Phone)
	})

	t.Run("修改密码会重新加密", func(t *testing.T) {
		svc, repo, u := setup(t)
		oldHash := u.Password

		newPassword := "newpass99"
		err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{}, &newPassword)
		require.NoError(t, err)

		updated, _ := repo.FindByID(ctx, u.ID)
		assert.NotEqual(t, oldHash, updated.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpass99")))

		// 新密码可以登录
		_, err = svc.Authenticate(ctx, "zhangsan", "newpass99")
		assert.NoError(t, err)
	})

	t.Run("新密码强度不足应失败", func(t *testing.T) {
		svc, repo, u := setup(t)
		oldHash := u.Password

		weak := "123"
		err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{}, &weak)
		assert.ErrorIs(t, err, ErrWeakPassword)

		updated, _ := repo.FindByID(ctx, u.ID)
		assert.Equal(t, oldHash, updated.Password, "校验失败不应写入")
	})

	t.Run("邮箱格式错误应失败", func(t *testing.T) {
		svc, _, u := setup(t)

		bad := "not-an-email"
		err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{Email: &bad}, nil)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("空更新直接返回", func(t *testing.T) {
		svc, _, u := setup(t)
		assert.NoError(t, svc.UpdateProfile(ctx, u.ID, ProfileUpdate{}, nil))
	})
}
