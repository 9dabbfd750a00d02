package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appreplenishment "github.com/xiebiao/campus-bookstore/internal/application/replenishment"
	"github.com/xiebiao/campus-bookstore/internal/domain/replenishment"
	"github.com/xiebiao/campus-bookstore/internal/interface/http/dto"
	"github.com/xiebiao/campus-bookstore/pkg/response"
)

// ReplenishmentHandler 进货订单HTTP处理器(管理员)
type ReplenishmentHandler struct {
	createUseCase  *appreplenishment.CreateUseCase
	confirmUseCase *appreplenishment.ConfirmUseCase
	listUseCase    *appreplenishment.ListUseCase
}

// NewReplenishmentHandler 创建进货订单处理器
func NewReplenishmentHandler(
	createUseCase *appreplenishment.CreateUseCase,
	confirmUseCase *appreplenishment.ConfirmUseCase,
	listUseCase *appreplenishment.ListUseCase,
) *ReplenishmentHandler {
	return &ReplenishmentHandler{
		createUseCase:  createUseCase,
		confirmUseCase: confirmUseCase,
		listUseCase:    listUseCase,
	}
}

// Create 创建进货订单
// @Summary      创建进货订单
// @Description  出版社必须与图书登记的出版社一致,创建后状态为待确认
// @Tags         进货
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateReplenishmentRequest true "进货信息"
// @Success      200 {object} response.Response "创建成功"
// @Failure      400 {object} response.Response "出版社不匹配"
// @Router       /api/v1/admin/publisher-orders [post]
func (h *ReplenishmentHandler) Create(c *gin.Context) {
	var req dto.CreateReplenishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appreplenishment.CreateRequest{
		ISBN:        req.ISBN,
		PublisherID: req.PublisherID,
		Quantity:    req.Quantity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Confirm 确认进货订单
// @Summary      确认进货订单
// @Description  状态转换与库存增加在同一事务中完成,重复确认被拒绝
// @Tags         进货
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "进货订单ID"
// @Success      200 {object} response.Response "确认成功"
// @Failure      400 {object} response.Response "订单已确认"
// @Router       /api/v1/admin/publisher-orders/{id}/confirm [put]
func (h *ReplenishmentHandler) Confirm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.ErrorWithCode(c, 40900, "进货订单ID格式错误")
		return
	}

	result, err := h.confirmUseCase.Execute(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// List 进货订单列表
// @Summary      进货订单列表
// @Tags         进货
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "状态过滤" Enums(pending, confirmed)
// @Param        page query int false "页码"
// @Param        page_size query int false "每页数量"
// @Success      200 {object} response.Response "进货订单列表"
// @Router       /api/v1/admin/publisher-orders [get]
func (h *ReplenishmentHandler) List(c *gin.Context) {
	var req dto.ListReplenishmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	var status replenishment.Status
	switch req.Status {
	case "pending":
		status = replenishment.StatusPending
	case "confirmed":
		status = replenishment.StatusConfirmed
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), status, req.Page, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
