package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/campus-bookstore/internal/domain/cart"
)

// TestViewCartUseCase_Execute 测试查看购物车
func TestViewCartUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("明细与合计", func(t *testing.T) {
		cartRepo := newFakeCartRepo()
		c, err := cartRepo.Create(ctx, 1)
		require.NoError(t, err)

		cartRepo.lines[c.ID] = []cart.Line{
			{ISBN: "9787115428028", Title: "Go语言实战", Quantity: 2, UnitPrice: 7900, Stock: 10},
			{ISBN: "9787111558422", Title: "计算机网络", Quantity: 1, UnitPrice: 13900, Stock: 5},
		}

		uc := NewViewCartUseCase(cartRepo)
		resp, err := uc.Execute(ctx, 1)
		require.NoError(t, err)

		require.Len(t, resp.Lines, 2)
		assert.Equal(t, int64(15800), resp.Lines[0].Subtotal)
		assert.Equal(t, "158.00", resp.Lines[0].SubtotalYuan)
		assert.Equal(t, int64(29700), resp.Total)
		assert.Equal(t, "297.00", resp.TotalYuan)
	})

	t.Run("空购物车返回空列表", func(t *testing.T) {
		cartRepo := newFakeCartRepo()
		_, err := cartRepo.Create(ctx, 1)
		require.NoError(t, err)

		uc := NewViewCartUseCase(cartRepo)
		resp, err := uc.Execute(ctx, 1)
		require.NoError(t, err)

		assert.NotNil(t, resp.Lines, "空购物车序列化为[]而非null")
		assert.Empty(t, resp.Lines)
		assert.Equal(t, int64(0), resp.Total)
	})

	t.Run("购物车不存在", func(t *testing.T) {
		uc := NewViewCartUseCase(newFakeCartRepo())

		_, err := uc.Execute(ctx, 99)
		assert.ErrorIs(t, err, cart.ErrCartNotFound)
	})
}
