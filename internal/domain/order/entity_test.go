package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *Order {
	items := []Item{
		{ISBN: "9787115428028", Quantity: 2, Price: 7900},
		{ISBN: "9787111558422", Quantity: 1, Price: 13900},
	}
	return NewOrder(GenerateOrderNo(), 1, items, 29700, "6222021234567890", "12/27")
}

// TestNewOrder 测试订单工厂方法
func TestNewOrder(t *testing.T) {
	o := newTestOrder()

	assert.Equal(t, StatusPending, o.Status, "新订单必须是Pending状态")
	assert.Equal(t, uint(1), o.UserID)
	assert.Len(t, o.Items, 2)
	assert.Equal(t, int64(29700), o.Total)
}

// TestOrder_Complete 测试状态机转换
func TestOrder_Complete(t *testing.T) {
	t.Run("Pending可以完成", func(t *testing.T) {
		o := newTestOrder()

		err := o.Complete()
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, o.Status)
	})

	t.Run("重复完成应失败", func(t *testing.T) {
		o := newTestOrder()
		require.NoError(t, o.Complete())

		err := o.Complete()
		assert.ErrorIs(t, err, ErrInvalidStatusTransition, "Completed是终态")
		assert.Equal(t, StatusCompleted, o.Status)
	})
}

// TestOrder_CanTransitionTo 测试状态转换规则
func TestOrder_CanTransitionTo(t *testing.T) {
	o := newTestOrder()
	assert.True(t, o.CanTransitionTo(StatusCompleted))
	assert.False(t, o.CanTransitionTo(StatusPending), "不允许原地转换")

	o.Status = StatusCompleted
	assert.False(t, o.CanTransitionTo(StatusCompleted))
	assert.False(t, o.CanTransitionTo(StatusPending), "不允许回退")
}

// TestOrder_CalculateTotal 测试金额计算与快照一致性
func TestOrder_CalculateTotal(t *testing.T) {
	o := newTestOrder()

	// 2×7900 + 1×13900 = 29700
	assert.Equal(t, int64(29700), o.CalculateTotal())
	assert.Equal(t, o.Total, o.CalculateTotal(), "快照金额应与明细一致")

	empty := NewOrder(GenerateOrderNo(), 1, nil, 0, "", "")
	assert.Equal(t, int64(0), empty.CalculateTotal())
}

// TestOrder_IsOwnedBy 测试订单归属
func TestOrder_IsOwnedBy(t *testing.T) {
	o := newTestOrder()
	assert.True(t, o.IsOwnedBy(1))
	assert.False(t, o.IsOwnedBy(2))
}

// TestGenerateOrderNo 测试订单号格式
func TestGenerateOrderNo(t *testing.T) {
	no := GenerateOrderNo()

	assert.True(t, strings.HasPrefix(no, "ORD"), "订单号以ORD开头: %s", no)
	assert.GreaterOrEqual(t, len(no), 19, "ORD+秒级时间戳+6位随机数: %s", no)
}

// TestStatus_String 测试状态描述
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "待处理", StatusPending.String())
	assert.Equal(t, "已完成", StatusCompleted.String())
	assert.Equal(t, "未知状态", Status(99).String())
}
