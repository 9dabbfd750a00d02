package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appreport "github.com/xiebiao/campus-bookstore/internal/application/report"
	"github.com/xiebiao/campus-bookstore/internal/interface/http/dto"
	"github.com/xiebiao/campus-bookstore/pkg/response"
)

// ReportHandler 销售统计报表HTTP处理器(管理员)
type ReportHandler struct {
	reportUseCase *appreport.UseCase
}

// NewReportHandler 创建报表处理器
func NewReportHandler(reportUseCase *appreport.UseCase) *ReportHandler {
	return &ReportHandler{reportUseCase: reportUseCase}
}

// SalesPrevMonth 上月销售汇总
// @Summary      上月销售汇总
// @Description  上一个自然月已完成订单的总数与总金额
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "月度汇总"
// @Router       /api/v1/admin/reports/sales-prev-month [get]
func (h *ReportHandler) SalesPrevMonth(c *gin.Context) {
	result, err := h.reportUseCase.SalesPrevMonth(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// SalesDaily 单日销售汇总
// @Summary      单日销售汇总
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Param        date query string true "日期(YYYY-MM-DD)"
// @Success      200 {object} response.Response "单日汇总"
// @Router       /api/v1/admin/reports/sales-daily [get]
func (h *ReportHandler) SalesDaily(c *gin.Context) {
	var req dto.DailySalesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		response.ErrorWithCode(c, 40900, "日期格式错误,应为YYYY-MM-DD")
		return
	}

	result, err := h.reportUseCase.SalesDaily(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// TopCustomers 客户消费排行
// @Summary      客户消费排行
// @Description  近3个月已完成订单消费金额前5的客户
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "客户排行"
// @Router       /api/v1/admin/reports/top-customers [get]
func (h *ReportHandler) TopCustomers(c *gin.Context) {
	result, err := h.reportUseCase.TopCustomers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// TopSellingBooks 图书销量排行
// @Summary      图书销量排行
// @Description  近3个月售出册数前10的图书
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "图书排行"
// @Router       /api/v1/admin/reports/top-selling-books [get]
func (h *ReportHandler) TopSellingBooks(c *gin.Context) {
	result, err := h.reportUseCase.TopSellingBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Replenishments 图书进货统计
// @Summary      图书进货统计
// @Description  单本图书的已确认进货单数与累计进货册数
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Param        isbn query string true "ISBN"
// @Success      200 {object} response.Response "进货统计"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/admin/reports/replenishments [get]
func (h *ReportHandler) Replenishments(c *gin.Context) {
	var req dto.ReplenishmentStatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	result, err := h.reportUseCase.BookReplenishments(c.Request.Context(), req.ISBN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
