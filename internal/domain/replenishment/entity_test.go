package replenishment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewOrder 测试进货订单工厂方法
func TestNewOrder(t *testing.T) {
	o := NewOrder("9787115428028", 1, 50)

	assert.Equal(t, StatusPending, o.Status, "新进货订单必须是待确认状态")
	assert.Equal(t, "9787115428028", o.ISBN)
	assert.Equal(t, uint(1), o.PublisherID)
	assert.Equal(t, 50, o.Quantity)
}

// TestOrder_Confirm 测试确认与重复确认
func TestOrder_Confirm(t *testing.T) {
	t.Run("待确认可以确认", func(t *testing.T) {
		o := NewOrder("9787115428028", 1, 50)

		err := o.Confirm()
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, o.Status)
	})

	t.Run("重复确认应失败", func(t *testing.T) {
		o := NewOrder("9787115428028", 1, 50)
		require.NoError(t, o.Confirm())

		err := o.Confirm()
		assert.ErrorIs(t, err, ErrAlreadyConfirmed, "重复确认会导致库存重复增加,必须拒绝")
		assert.Equal(t, StatusConfirmed, o.Status)
	})
}

// TestStatus_String 测试状态描述
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "待确认", StatusPending.String())
	assert.Equal(t, "已确认", StatusConfirmed.String())
	assert.Equal(t, "未知状态", Status(0).String())
}
