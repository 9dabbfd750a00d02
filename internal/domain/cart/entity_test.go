package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLine_Subtotal 测试购物车行小计
func TestLine_Subtotal(t *testing.T) {
	line := Line{ISBN: "9787115428028", Title: "Go语言实战", Quantity: 3, UnitPrice: 7900, Stock: 10}
	assert.Equal(t, int64(23700), line.Subtotal())

	zero := Line{Quantity: 0, UnitPrice: 7900}
	assert.Equal(t, int64(0), zero.Subtotal())
}
