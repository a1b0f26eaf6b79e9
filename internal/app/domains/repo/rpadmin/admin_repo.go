package rpadmin

import (
	"context"

	"ixp/apiserver/internal/app/domains/entity/etadmin"
)

// AdminRepository 管理员仓储接口
type AdminRepository interface {
	// Create 新建管理员
	Create(ctx context.Context, admin *etadmin.Admin) error

	// GetByID 按ID查询，未命中返回 nil, nil
	GetByID(ctx context.Context, adminID int64) (*etadmin.Admin, error)

	// GetByUsername 按用户名查询，未命中返回 nil, nil
	GetByUsername(ctx context.Context, username string) (*etadmin.Admin, error)

	// GetByEmail 按邮箱查询（注册查重用），未命中返回 nil, nil
	GetByEmail(ctx context.Context, email string) (*etadmin.Admin, error)

	// EnsureIndexes 保证 username/email 的唯一索引存在
	EnsureIndexes(ctx context.Context) error
}
