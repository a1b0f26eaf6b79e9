package order

import (
	"ixp/apiserver/internal/app/domains/services/svorder"
)

// OrderHandler 订单查询、报表与状态更新接口
type OrderHandler struct {
	orderService *svorder.OrderService
}

// NewOrderHandler 创建 OrderHandler
func NewOrderHandler(orderService *svorder.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}
