package replenishment

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
	"github.com/xiebiao/campus-bookstore/internal/domain/replenishment"
	"github.com/xiebiao/campus-bookstore/pkg/metrics"
	"github.com/xiebiao/campus-bookstore/pkg/mq"
)

// TxManager 事务管理器接口
// 用例层依赖此接口而非mysql包的具体实现,便于单元测试注入直通实现
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ConfirmUseCase 确认进货订单用例(管理员)
// 状态转换Pending→Confirmed与库存增加在同一事务中执行:
// 重复确认被领域行为拒绝,库存不可能重复增加
type ConfirmUseCase struct {
	replRepo    replenishment.Repository
	catalogRepo catalog.Repository
	txManager   TxManager
	publisher   mq.EventPublisher
}

// NewConfirmUseCase 创建确认进货订单用例
func NewConfirmUseCase(
	replRepo replenishment.Repository,
	catalogRepo catalog.Repository,
	txManager TxManager,
	publisher mq.EventPublisher,
) *ConfirmUseCase {
	return &ConfirmUseCase{
		replRepo:    replRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		publisher:   publisher,
	}
}

// replenishmentConfirmedEvent 进货确认事件(发布到replenishment.confirmed)
type replenishmentConfirmedEvent struct {
	OrderID  uint   `json:"order_id"`
	ISBN     string `json:"isbn"`
	Quantity int    `json:"quantity"`
}

// Execute 执行确认
func (uc *ConfirmUseCase) Execute(ctx context.Context, orderID uint) (*OrderInfo, error) {
	var result *replenishment.Order

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 悲观锁查询,防止并发确认
		o, err := uc.replRepo.LockByID(txCtx, orderID)
		if err != nil {
			return err
		}

		// 2. 领域行为校验状态转换(已确认则拒绝)
		if err := o.Confirm(); err != nil {
			return err
		}
		if err := uc.replRepo.UpdateStatus(txCtx, o); err != nil {
			return err
		}

		// 3. 同一事务中增加库存
		if err := uc.catalogRepo.AdjustStock(txCtx, o.ISBN, o.Quantity); err != nil {
			return err
		}

		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncReplenishmentConfirmed()

	// 事务提交后尽力而为地发布事件
	event := replenishmentConfirmedEvent{
		OrderID:  result.ID,
		ISBN:     result.ISBN,
		Quantity: result.Quantity,
	}
	if err := uc.publisher.Publish(ctx, "replenishment.confirmed", event); err != nil {
		zap.L().Warn("发布进货确认事件失败",
			zap.Uint("order_id", result.ID),
			zap.Error(err))
	}

	info := toOrderInfo(result)
	return &info, nil
}
