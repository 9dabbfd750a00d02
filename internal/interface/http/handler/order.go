package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/campus-bookstore/internal/application/order"
	"github.com/xiebiao/campus-bookstore/internal/interface/http/dto"
	"github.com/xiebiao/campus-bookstore/internal/interface/http/middleware"
	"github.com/xiebiao/campus-bookstore/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	checkoutUseCase   *apporder.CheckoutUseCase
	listOrdersUseCase *apporder.ListOrdersUseCase
	getOrderUseCase   *apporder.GetOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	checkoutUseCase *apporder.CheckoutUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
	getOrderUseCase *apporder.GetOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		checkoutUseCase:   checkoutUseCase,
		listOrdersUseCase: listOrdersUseCase,
		getOrderUseCase:   getOrderUseCase,
	}
}

// Checkout 购物车结算
// @Summary      购物车结算
// @Description  整车结算:锁定库存、价格快照、扣减库存、清空购物车在一个事务中完成
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CheckoutRequest true "支付卡信息"
// @Success      200 {object} response.Response "结算成功"
// @Failure      400 {object} response.Response "购物车为空或库存不足"
// @Router       /api/v1/orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)
	result, err := h.checkoutUseCase.Execute(c.Request.Context(), apporder.CheckoutRequest{
		UserID:     userID,
		CardNumber: req.CardNumber,
		CardExpiry: req.CardExpiry,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 历史订单
// @Summary      历史订单
// @Description  分页查询当前用户的历史订单,按下单时间降序
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "订单列表"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)
	result, err := h.listOrdersUseCase.Execute(c.Request.Context(), userID, req.Page, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get 订单详情
// @Summary      订单详情
// @Description  只能查看自己的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response "订单详情"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.ErrorWithCode(c, 40900, "订单ID格式错误")
		return
	}

	userID := middleware.MustGetUserID(c)
	result, err := h.getOrderUseCase.Execute(c.Request.Context(), userID, uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
