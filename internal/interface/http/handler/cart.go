package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/campus-bookstore/internal/application/cart"
	"github.com/xiebiao/campus-bookstore/internal/interface/http/dto"
	"github.com/xiebiao/campus-bookstore/internal/interface/http/middleware"
	"github.com/xiebiao/campus-bookstore/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	addItemUseCase    *appcart.AddItemUseCase
	viewCartUseCase   *appcart.ViewCartUseCase
	removeItemUseCase *appcart.RemoveItemUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(
	addItemUseCase *appcart.AddItemUseCase,
	viewCartUseCase *appcart.ViewCartUseCase,
	removeItemUseCase *appcart.RemoveItemUseCase,
) *CartHandler {
	return &CartHandler{
		addItemUseCase:    addItemUseCase,
		viewCartUseCase:   viewCartUseCase,
		removeItemUseCase: removeItemUseCase,
	}
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Description  同一本书重复加入时数量累加;已有数量+本次数量不能超过当前库存
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddCartItemRequest true "图书与数量"
// @Success      200 {object} response.Response "加入成功"
// @Failure      400 {object} response.Response "库存不足"
// @Router       /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)
	if err := h.addItemUseCase.Execute(c.Request.Context(), userID, req.ISBN, req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// View 查看购物车
// @Summary      查看购物车
// @Description  明细联查图书:标题、当前单价、库存实时变化,含各行小计与总计
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "购物车明细"
// @Router       /api/v1/cart [get]
func (h *CartHandler) View(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	result, err := h.viewCartUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// RemoveItem 移除购物车条目
// @Summary      移除购物车条目
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        isbn path string true "ISBN"
// @Success      200 {object} response.Response "移除成功"
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/cart/items/{isbn} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	if err := h.removeItemUseCase.Execute(c.Request.Context(), userID, c.Param("isbn")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
