package replenishment

import (
	apperrors "github.com/xiebiao/campus-bookstore/pkg/errors"
)

// 进货订单领域错误定义
var (
	// ErrOrderNotFound 进货订单不存在
	ErrOrderNotFound = apperrors.New(apperrors.ErrCodePubOrderNotFound, "进货订单不存在")

	// ErrAlreadyConfirmed 进货订单已确认
	ErrAlreadyConfirmed = apperrors.New(apperrors.ErrCodeAlreadyConfirmed, "进货订单已确认,不能重复确认")

	// ErrPublisherMismatch 出版社与图书不匹配
	ErrPublisherMismatch = apperrors.New(apperrors.ErrCodePublisherMismatch, "该出版社不是这本书的供货出版社")

	// ErrInvalidQuantity 进货数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "进货数量必须大于0")
)
