package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/campus-bookstore/internal/domain/cart"
	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
	"github.com/xiebiao/campus-bookstore/internal/domain/order"
	"github.com/xiebiao/campus-bookstore/pkg/metrics"
	"github.com/xiebiao/campus-bookstore/pkg/mq"
)

// TxManager 事务管理器接口
// 用例层依赖此接口而非mysql包的具体实现,便于单元测试注入直通实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CheckoutUseCase 购物车结算用例(整个系统最核心的用例)
// 涉及:事务处理、悲观锁并发控制、价格快照、状态机转换
type CheckoutUseCase struct {
	orderRepo   order.Repository
	cartRepo    cart.Repository
	catalogRepo catalog.Repository
	txManager   TxManager
	publisher   mq.EventPublisher
}

// NewCheckoutUseCase 创建结算用例
func NewCheckoutUseCase(
	orderRepo order.Repository,
	cartRepo cart.Repository,
	catalogRepo catalog.Repository,
	txManager TxManager,
	publisher mq.EventPublisher,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// CheckoutRequest 结算请求DTO
// 银行卡字段按原样存储,不做校验也不发起扣款(支付网关不在范围内)
type CheckoutRequest struct {
	UserID     uint
	CardNumber string
	CardExpiry string
}

// CheckoutResponse 结算响应DTO
type CheckoutResponse struct {
	OrderID   uint   `json:"order_id"`
	OrderNo   string `json:"order_no"`
	Total     int64  `json:"total"`
	TotalYuan string `json:"total_yuan"`
	Status    string `json:"status"`
	OrderDate string `json:"order_date"`
}

// orderCompletedEvent 订单完成事件(发布到order.completed)
type orderCompletedEvent struct {
	OrderNo string `json:"order_no"`
	UserID  uint   `json:"user_id"`
	Total   int64  `json:"total"`
	Items   int    `json:"items"`
}

// Execute 执行结算
// 整个流程在一个事务中完成,任一步失败则订单、明细、库存扣减全部回滚:
//  1. 读取购物车明细,空购物车拒绝结算
//  2. 逐行SELECT FOR UPDATE锁定图书,校验库存(锁内检查,防止并发超卖)
//  3. 按锁定时的价格计算总额(价格快照,防止改价影响)
//  4. 创建Pending订单和明细
//  5. 状态机转换Pending→Completed
//  6. 逐行条件UPDATE扣减库存(stock + delta >= 0,兜底保证不超卖)
//  7. 清空购物车(购物车本身保留)
func (uc *CheckoutUseCase) Execute(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	start := time.Now()

	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 步骤1:读取购物车明细
		c, err := uc.cartRepo.FindByUserID(txCtx, req.UserID)
		if err != nil {
			return err
		}
		items, err := uc.cartRepo.Items(txCtx, c.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return cart.ErrCartEmpty
		}

		// 步骤2+3:锁定图书行,锁内校验库存,按锁定价格生成明细快照
		var total int64
		orderItems := make([]order.Item, len(items))
		for i, item := range items {
			b, err := uc.catalogRepo.LockByISBN(txCtx, item.ISBN)
			if err != nil {
				return err
			}
			if b.Stock < item.Quantity {
				return catalog.ErrInsufficientStock
			}

			orderItems[i] = order.Item{
				ISBN:     item.ISBN,
				Quantity: item.Quantity,
				Price:    b.Price, // 使用数据库当前价格,不信任客户端
			}
			total += b.Price * int64(item.Quantity)
		}

		// 步骤4:创建Pending订单(含明细)
		newOrder := order.NewOrder(order.GenerateOrderNo(), req.UserID,
			orderItems, total, req.CardNumber, req.CardExpiry)
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// 步骤5:状态机转换Pending→Completed
		if err := newOrder.Complete(); err != nil {
			return err
		}
		if err := uc.orderRepo.UpdateStatus(txCtx, newOrder); err != nil {
			return err
		}

		// 步骤6:扣减库存(条件UPDATE兜底,零行受影响返回ErrInsufficientStock)
		for _, item := range items {
			if err := uc.catalogRepo.AdjustStock(txCtx, item.ISBN, -item.Quantity); err != nil {
				return err
			}
		}

		// 步骤7:清空购物车
		if err := uc.cartRepo.Clear(txCtx, c.ID); err != nil {
			return err
		}

		result = newOrder
		return nil
	})

	if err != nil {
		metrics.ObserveCheckout("failure", start)
		return nil, err
	}

	metrics.ObserveCheckout("success", start)

	// 事务提交后尽力而为地发布事件,失败只记录日志不影响结算结果
	event := orderCompletedEvent{
		OrderNo: result.OrderNo,
		UserID:  result.UserID,
		Total:   result.Total,
		Items:   len(result.Items),
	}
	if err := uc.publisher.Publish(ctx, "order.completed", event); err != nil {
		zap.L().Warn("发布订单完成事件失败",
			zap.String("order_no", result.OrderNo),
			zap.Error(err))
	}

	return &CheckoutResponse{
		OrderID:   result.ID,
		OrderNo:   result.OrderNo,
		Total:     result.Total,
		TotalYuan: formatPrice(result.Total),
		Status:    result.Status.String(),
		OrderDate: result.OrderDate.Format("2006-01-02 15:04:05"),
	}, nil
}
