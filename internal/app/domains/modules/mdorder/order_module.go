package mdorder

import (
	"context"

	"ixp/apiserver/internal/app/domains/entity/etcustomer"
	"ixp/apiserver/internal/app/domains/entity/etorder"
	"ixp/apiserver/internal/app/domains/entity/etproduct"
	"ixp/apiserver/internal/app/domains/repo/rpcustomer"
	"ixp/apiserver/internal/app/domains/repo/rporder"
	"ixp/apiserver/internal/app/domains/repo/rpproduct"
)

// OrderModule 订单模块（数据操作层）
// 报表管线需要跨三个集合取数，所以这里同时持有订单、客户、商品仓储
type OrderModule struct {
	orderRepo    rporder.OrderRepository
	customerRepo rpcustomer.CustomerRepository
	productRepo  rpproduct.ProductRepository
}

// NewOrderModule 创建订单模块
func NewOrderModule(
	orderRepo rporder.OrderRepository,
	customerRepo rpcustomer.CustomerRepository,
	productRepo rpproduct.ProductRepository,
) *OrderModule {
	return &OrderModule{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// ListOrders 查询全部订单
func (m *OrderModule) ListOrders(ctx context.Context) ([]*etorder.Order, error) {
	return m.orderRepo.ListAll(ctx)
}

// GetOrdersByIDs 按订单ID集合查询
func (m *OrderModule) GetOrdersByIDs(ctx context.Context, ids []int64) ([]*etorder.Order, error) {
	return m.orderRepo.GetByIDs(ctx, ids)
}

// UpdateOrderStatus 条件更新订单状态，返回是否命中
func (m *OrderModule) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (bool, error) {
	return m.orderRepo.UpdateStatus(ctx, orderID, status)
}

// ListCustomers 查询全部客户（供连接阶段建索引）
func (m *OrderModule) ListCustomers(ctx context.Context) ([]*etcustomer.Customer, error) {
	return m.customerRepo.ListAll(ctx)
}

// ListProducts 查询全部商品（供连接阶段建索引）
func (m *OrderModule) ListProducts(ctx context.Context) ([]*etproduct.Product, error) {
	return m.productRepo.ListAll(ctx)
}
