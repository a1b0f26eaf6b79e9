package rporder

import (
	"context"

	"ixp/apiserver/internal/app/domains/entity/etorder"
)

// OrderRepository 订单仓储接口
// 报表管线从这里整表读入订单，状态更新是唯一的写路径
type OrderRepository interface {
	// ListAll 返回全部订单
	ListAll(ctx context.Context) ([]*etorder.Order, error)

	// GetByIDs 按订单ID集合查询
	GetByIDs(ctx context.Context, ids []int64) ([]*etorder.Order, error)

	// UpdateStatus 条件更新单个订单的 order_status 字段
	// 返回是否命中了订单（至多命中一条），状态值不做合法性校验
	UpdateStatus(ctx context.Context, orderID int64, status string) (bool, error)
}
