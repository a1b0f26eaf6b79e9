package request

// UpdateOrderStatusRequest 更新订单状态请求（DTO）
// order_status 接受任意字符串，不做枚举校验（历史接口的既定行为）
type UpdateOrderStatusRequest struct {
	OrderID     int64  `json:"order_id" binding:"required" example:"401"`
	OrderStatus string `json:"order_status" binding:"required" example:"Shipped"`
}
