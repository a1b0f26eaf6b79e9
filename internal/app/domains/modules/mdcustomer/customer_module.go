package mdcustomer

import (
	"context"

	"ixp/apiserver/internal/app/domains/entity/etcustomer"
	"ixp/apiserver/internal/app/domains/repo/rpcustomer"
)

// CustomerModule 客户模块（数据操作层）
type CustomerModule struct {
	customerRepo rpcustomer.CustomerRepository
}

// NewCustomerModule 创建客户模块
func NewCustomerModule(customerRepo rpcustomer.CustomerRepository) *CustomerModule {
	return &CustomerModule{customerRepo: customerRepo}
}

// ListCustomers 查询全部客户
func (m *CustomerModule) ListCustomers(ctx context.Context) ([]*etcustomer.Customer, error) {
	return m.customerRepo.ListAll(ctx)
}

// GetCustomer 按客户ID查询，未命中返回 nil, nil
func (m *CustomerModule) GetCustomer(ctx context.Context, customerID int64) (*etcustomer.Customer, error) {
	return m.customerRepo.GetByID(ctx, customerID)
}

// GetCustomersByMembershipStatus 按会员状态查询
func (m *CustomerModule) GetCustomersByMembershipStatus(ctx context.Context, status string) ([]*etcustomer.Customer, error) {
	return m.customerRepo.GetByMembershipStatus(ctx, status)
}

// GetCustomersByEmail 按嵌套联系邮箱精确查询
func (m *CustomerModule) GetCustomersByEmail(ctx context.Context, email string) ([]*etcustomer.Customer, error) {
	return m.customerRepo.GetByEmail(ctx, email)
}

// SearchCustomersByName 按姓名模糊查询
func (m *CustomerModule) SearchCustomersByName(ctx context.Context, query string) ([]*etcustomer.Customer, error) {
	return m.customerRepo.SearchByName(ctx, query)
}
