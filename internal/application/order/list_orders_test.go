package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/campus-bookstore/internal/domain/order"
)

// seedOrder 向仓储写入一笔已完成订单
func seedOrder(t *testing.T, repo *fakeOrderRepo, userID uint) *order.Order {
	o := order.NewOrder(order.GenerateOrderNo(), userID,
		[]order.Item{{ISBN: "9787115428028", Quantity: 2, Price: 7900}},
		15800, "6222021234567890", "12/27")
	require.NoError(t, repo.Create(context.Background(), o))
	require.NoError(t, o.Complete())
	require.NoError(t, repo.UpdateStatus(context.Background(), o))
	return o
}

// TestListOrdersUseCase_Execute 测试历史订单查询
func TestListOrdersUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo()
	seedOrder(t, repo, 1)
	seedOrder(t, repo, 1)
	seedOrder(t, repo, 2)

	uc := NewListOrdersUseCase(repo)

	t.Run("只返回自己的订单", func(t *testing.T) {
		resp, err := uc.Execute(ctx, 1, 1, 20)
		require.NoError(t, err)

		assert.Equal(t, int64(2), resp.Total)
		assert.Len(t, resp.Orders, 2)
	})

	t.Run("分页参数默认值", func(t *testing.T) {
		resp, err := uc.Execute(ctx, 1, 0, 0)
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Page)
		assert.Equal(t, 20, resp.PageSize)
	})

	t.Run("无订单返回空列表", func(t *testing.T) {
		resp, err := uc.Execute(ctx, 99, 1, 20)
		require.NoError(t, err)

		assert.Equal(t, int64(0), resp.Total)
		assert.Empty(t, resp.Orders)
	})
}

// TestGetOrderUseCase_Execute 测试订单详情与归属校验
func TestGetOrderUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := newFakeOrderRepo()
	o := seedOrder(t, repo, 1)

	uc := NewGetOrderUseCase(repo)

	t.Run("查看自己的订单", func(t *testing.T) {
		info, err := uc.Execute(ctx, 1, o.ID)
		require.NoError(t, err)

		assert.Equal(t, o.OrderNo, info.OrderNo)
		assert.Equal(t, "158.00", info.TotalYuan)
		require.Len(t, info.Items, 1)
		assert.Equal(t, "79.00", info.Items[0].PriceYuan)
	})

	t.Run("他人订单返回不存在", func(t *testing.T) {
		// 不区分"不存在"与"无权限",避免泄露订单存在性
		_, err := uc.Execute(ctx, 2, o.ID)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("订单不存在", func(t *testing.T) {
		_, err := uc.Execute(ctx, 1, 999)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}
