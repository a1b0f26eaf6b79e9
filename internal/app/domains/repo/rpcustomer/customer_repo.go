package rpcustomer

import (
	"context"

	"ixp/apiserver/internal/app/domains/entity/etcustomer"
)

// CustomerRepository 客户仓储接口（只读）
type CustomerRepository interface {
	// ListAll 返回全部客户
	ListAll(ctx context.Context) ([]*etcustomer.Customer, error)

	// GetByID 按客户ID查询，未命中返回 nil, nil
	GetByID(ctx context.Context, customerID int64) (*etcustomer.Customer, error)

	// GetByMembershipStatus 按会员状态查询
	GetByMembershipStatus(ctx context.Context, status string) ([]*etcustomer.Customer, error)

	// GetByEmail 按嵌套联系邮箱精确查询（区分大小写）
	GetByEmail(ctx context.Context, email string) ([]*etcustomer.Customer, error)

	// SearchByName 按姓名模糊查询（不区分大小写），结果按姓名排序
	SearchByName(ctx context.Context, query string) ([]*etcustomer.Customer, error)
}
