package svorder

import (
	"context"
	"fmt"
	"sort"

	"ixp/apiserver/internal/app/domains/entity/etorder"
	"ixp/apiserver/internal/app/domains/modules/mdorder"
)

// OrderService 订单服务，负责订单查询与报表编排
type OrderService struct {
	orderModule *mdorder.OrderModule
}

// NewOrderService 创建订单服务实例
func NewOrderService(orderModule *mdorder.OrderModule) *OrderService {
	return &OrderService{orderModule: orderModule}
}

// ListOrders 查询全部订单
func (s *OrderService) ListOrders(ctx context.Context) ([]*etorder.Order, error) {
	return s.orderModule.ListOrders(ctx)
}

// GetOrdersByIDs 按订单ID集合查询
func (s *OrderService) GetOrdersByIDs(ctx context.Context, ids []int64) ([]*etorder.Order, error) {
	return s.orderModule.GetOrdersByIDs(ctx, ids)
}

// UpdateOrderStatus 条件更新订单状态，返回是否命中订单
// 状态值不做合法性校验，任意字符串都接受（历史接口的既定行为）
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (bool, error) {
	return s.orderModule.UpdateOrderStatus(ctx, orderID, status)
}

// OrderReports 执行报表管线的前两个阶段并返回结果
// 两个阶段按序执行、每次请求全量重算，不做跨请求缓存，保证结果总是新鲜的：
//  1. Join-and-Reshape：订单行拍平、连接客户与商品、按 (订单,商品) 再按订单聚合
//  2. Sales-Total：客户维度的终身销售额（数量 × 当前目录单价）
//
// 展示转换（改名、日期与金额格式化、销售额拼接）在 response 转换层完成
func (s *OrderService) OrderReports(ctx context.Context) ([]*etorder.OrderReport, map[int64]float64, error) {
	orders, err := s.orderModule.ListOrders(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load orders failed: %w", err)
	}
	customers, err := s.orderModule.ListCustomers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load customers failed: %w", err)
	}
	products, err := s.orderModule.ListProducts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load products failed: %w", err)
	}

	reports := buildOrderReports(orders, customers, products)
	sales := salesTotals(orders, products)
	return reports, sales, nil
}

// TotalSalesPerCustomer 客户维度终身销售额，按客户ID升序
func (s *OrderService) TotalSalesPerCustomer(ctx context.Context) ([]etorder.CustomerSales, error) {
	orders, err := s.orderModule.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders failed: %w", err)
	}
	products, err := s.orderModule.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products failed: %w", err)
	}

	totals := salesTotals(orders, products)
	result := make([]etorder.CustomerSales, 0, len(totals))
	for customerID, total := range totals {
		result = append(result, etorder.CustomerSales{CustomerID: customerID, TotalSales: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CustomerID < result[j].CustomerID })
	return result, nil
}

// TotalOrdersPerCustomer 客户维度订单数，按客户ID升序
func (s *OrderService) TotalOrdersPerCustomer(ctx context.Context) ([]etorder.CustomerOrderCount, error) {
	orders, err := s.orderModule.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders failed: %w", err)
	}

	counts := make(map[int64]int)
	for _, order := range orders {
		counts[order.CustomerID]++
	}

	result := make([]etorder.CustomerOrderCount, 0, len(counts))
	for customerID, n := range counts {
		result = append(result, etorder.CustomerOrderCount{CustomerID: customerID, TotalOrders: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CustomerID < result[j].CustomerID })
	return result, nil
}
