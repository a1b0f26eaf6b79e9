package response

// EnrichedProductLine 富化订单里的一个商品行
// totalPrice 是展示用的两位小数字符串，不是数值
type EnrichedProductLine struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	TotalPrice string  `json:"totalPrice"`
}

// EnrichedOrderResponse 富化订单响应：对外的最终报表形态
// totalSales 正常是两位小数字符串；客户没有销售额聚合时按历史接口约定回退为数字 0
type EnrichedOrderResponse struct {
	CustomerID     int64                  `json:"customerId"`
	CustomerName   string                 `json:"customerName"`
	OrderDate      string                 `json:"orderDate"` // DD-MM-YYYY
	Products       []*EnrichedProductLine `json:"products"`
	TotalPrice     string                 `json:"totalPrice"`
	TotalQuantity  int                    `json:"totalQuantity"`
	TotalSales     interface{}            `json:"totalSales"`
	DeliveryStatus string                 `json:"deliveryStatus"`
	OrderStatus    string                 `json:"orderStatus"`
	ID             int64                  `json:"id"`
}

// CustomerSalesResponse 客户销售额聚合响应
type CustomerSalesResponse struct {
	CustomerID int64   `json:"customer_id"`
	TotalSale  float64 `json:"total_sale"`
}

// CustomerOrderCountResponse 客户订单数聚合响应
type CustomerOrderCountResponse struct {
	CustomerID  int64 `json:"customer_id"`
	TotalOrders int   `json:"total_orders"`
}
