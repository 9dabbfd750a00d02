package user

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/campus-bookstore/pkg/errors"
)

// Service 用户领域服务
// 设计说明：
// 1. 包含不属于单个实体的业务逻辑（密码加密、验证）
// 2. 依赖Repository接口，不依赖具体实现
type Service interface {
	// Register 顾客注册
	// 仅校验并持久化用户本身；购物车的创建由应用层在同一事务中完成
	Register(ctx context.Context, username, password, firstName, lastName, email, phone, address string) (*User, error)

	// Authenticate 验证用户名密码，返回用户
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// UpdateProfile 更新个人信息
	// plainPassword非nil时会校验强度并加密后写入
	UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate, plainPassword *string) error
}

type service struct {
	repo Repository
}

// NewService 创建用户领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 顾客注册
// 业务规则：
// 1. 用户名3-30个字符
// 2. 邮箱格式校验
// 3. 密码强度校验（8-20位，包含字母和数字）
// 4. 用户名唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, username, password, firstName, lastName, email, phone, address string) (*User, error) {
	if len(username) < 3 || len(username) > 30 {
		return nil, ErrInvalidUsername
	}
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	// bcrypt自动加盐，cost=12平衡安全性与性能
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	u := NewCustomer(username, string(hashedPassword), firstName, lastName, email, phone, address)

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Authenticate 验证用户名密码
// 用户不存在与密码错误返回同一个错误，避免用户名枚举
func (s *service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrInvalidPassword
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return u, nil
}

// UpdateProfile 更新个人信息
// 整体校验所有待更新字段，全部通过后才执行单次更新
func (s *service) UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate, plainPassword *string) error {
	if upd.Email != nil && !isValidEmail(*upd.Email) {
		return ErrInvalidEmail
	}

	if plainPassword != nil {
		if err := validatePasswordStrength(*plainPassword); err != nil {
			return err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*plainPassword), 12)
		if err != nil {
			return apperrors.Wrap(err, "密码加密失败")
		}
		hashedStr := string(hashed)
		upd.Password = &hashedStr
	}

	if upd.Empty() {
		return nil
	}

	return s.repo.UpdateProfile(ctx, id, upd)
}

// =========================================
// 辅助函数：业务规则校验
// =========================================

// isValidEmail 邮箱格式校验
func isValidEmail(email string) bool {
	pattern := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	matched, _ := regexp.MatchString(pattern, email)
	return matched
}

// validatePasswordStrength 密码强度校验
// 规则：8-20位，必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return ErrWeakPassword
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}

	return nil
}
