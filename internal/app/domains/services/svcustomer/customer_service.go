package svcustomer

import (
	"context"

	"ixp/apiserver/internal/app/domains/entity/etcustomer"
	"ixp/apiserver/internal/app/domains/modules/mdcustomer"
)

// CustomerService 客户服务
type CustomerService struct {
	customerModule *mdcustomer.CustomerModule
}

// NewCustomerService 创建客户服务实例
func NewCustomerService(customerModule *mdcustomer.CustomerModule) *CustomerService {
	return &CustomerService{customerModule: customerModule}
}

// ListCustomers 查询全部客户
func (s *CustomerService) ListCustomers(ctx context.Context) ([]*etcustomer.Customer, error) {
	return s.customerModule.ListCustomers(ctx)
}

// GetCustomer 按客户ID查询，未命中返回 nil, nil
func (s *CustomerService) GetCustomer(ctx context.Context, customerID int64) (*etcustomer.Customer, error) {
	return s.customerModule.GetCustomer(ctx, customerID)
}

// GetCustomersByMembershipStatus 按会员状态查询
func (s *CustomerService) GetCustomersByMembershipStatus(ctx context.Context, status string) ([]*etcustomer.Customer, error) {
	return s.customerModule.GetCustomersByMembershipStatus(ctx, status)
}

// GetCustomersByEmail 按嵌套联系邮箱精确查询
func (s *CustomerService) GetCustomersByEmail(ctx context.Context, email string) ([]*etcustomer.Customer, error) {
	return s.customerModule.GetCustomersByEmail(ctx, email)
}

// SearchCustomersByName 按姓名模糊查询
func (s *CustomerService) SearchCustomersByName(ctx context.Context, query string) ([]*etcustomer.Customer, error) {
	return s.customerModule.SearchCustomersByName(ctx, query)
}
