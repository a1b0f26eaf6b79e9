package mdadmin

import (
	"context"
	"time"

	"ixp/apiserver/internal/app/domains/entity/etadmin"
	"ixp/apiserver/internal/app/domains/repo/rpadmin"
	"ixp/apiserver/internal/app/domains/repo/rptoken"
)

// AdminModule 管理员模块（数据操作层）
type AdminModule struct {
	adminRepo  rpadmin.AdminRepository
	tokenStore rptoken.TokenStore
}

// NewAdminModule 创建管理员模块
func NewAdminModule(adminRepo rpadmin.AdminRepository, tokenStore rptoken.TokenStore) *AdminModule {
	return &AdminModule{
		adminRepo:  adminRepo,
		tokenStore: tokenStore,
	}
}

// CreateAdmin 新建管理员
func (m *AdminModule) CreateAdmin(ctx context.Context, admin *etadmin.Admin) error {
	return m.adminRepo.Create(ctx, admin)
}

// GetAdmin 按ID查询，未命中返回 nil, nil
func (m *AdminModule) GetAdmin(ctx context.Context, adminID int64) (*etadmin.Admin, error) {
	return m.adminRepo.GetByID(ctx, adminID)
}

// GetAdminByUsername 按用户名查询，未命中返回 nil, nil
func (m *AdminModule) GetAdminByUsername(ctx context.Context, username string) (*etadmin.Admin, error) {
	return m.adminRepo.GetByUsername(ctx, username)
}

// GetAdminByEmail 按邮箱查询，未命中返回 nil, nil
func (m *AdminModule) GetAdminByEmail(ctx context.Context, email string) (*etadmin.Admin, error) {
	return m.adminRepo.GetByEmail(ctx, email)
}

// BlacklistToken 注销 token
func (m *AdminModule) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	return m.tokenStore.Blacklist(ctx, token, ttl)
}
