package user

import (
	apperrors "github.com/xiebiao/campus-bookstore/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "用户不存在")

	// ErrUsernameDuplicate 用户名已存在
	ErrUsernameDuplicate = apperrors.New(apperrors.ErrCodeUsernameDuplicate, "用户名已被注册")

	// ErrInvalidPassword 用户名或密码错误
	ErrInvalidPassword = apperrors.New(apperrors.ErrCodeInvalidPassword, "用户名或密码错误")

	// ErrWeakPassword 密码强度不足
	ErrWeakPassword = apperrors.New(apperrors.ErrCodeWeakPassword, "密码强度不足（需8-20位，包含字母和数字）")

	// ErrInvalidEmail 邮箱格式不正确
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")

	// ErrInvalidUsername 用户名不合法
	ErrInvalidUsername = apperrors.New(apperrors.ErrCodeInvalidParams, "用户名长度应为3-30个字符")

	// ErrAlreadyAdmin 用户已是管理员
	ErrAlreadyAdmin = apperrors.New(apperrors.ErrCodeAlreadyAdmin, "用户已是管理员")
)
