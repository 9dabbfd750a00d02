package user

import (
	"time"
)

// Role 用户角色
type Role string

const (
	RoleCustomer Role = "Customer" // 普通顾客
	RoleAdmin    Role = "Admin"    // 管理员
)

// Valid 校验角色是否合法
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User 用户实体（聚合根）
// 设计说明：
// 1. 密码bcrypt加密存储，领域实体不暴露明文
// 2. 每个用户注册时自动创建一个购物车（一对一，见cart聚合）
// 3. 领域实体不依赖GORM tag（infrastructure层处理映射）
type User struct {
	ID        uint
	Username  string
	Password  string // bcrypt哈希值
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer 创建新顾客（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewCustomer(username, hashedPassword, firstName, lastName, email, phone, address string) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		Address:   address,
		Role:      RoleCustomer,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Promote 提升为管理员（领域行为）
// 业务规则：只有Customer可以被提升；重复提升返回错误
func (u *User) Promote() error {
	if u.Role == RoleAdmin {
		return ErrAlreadyAdmin
	}
	u.Role = RoleAdmin
	u.UpdatedAt = time.Now()
	return nil
}

// ProfileUpdate 个人信息部分更新结构
// 每个可变属性一个可选字段，nil表示不修改；整体校验后单次写入
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
	Password  *string // 已加密的新密码（Service层负责加密）
}

// Empty 是否没有任何字段需要更新
func (u ProfileUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil &&
		u.Phone == nil && u.Address == nil && u.Password == nil
}
