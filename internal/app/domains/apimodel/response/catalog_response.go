package response

// 目录类响应 DTO，键名与文档库存储格式一致（_id 等），保持对外兼容

// ProductResponse 商品响应
type ProductResponse struct {
	ID       int64   `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// ContactResponse 联系方式响应
type ContactResponse struct {
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// CustomerResponse 客户响应
type CustomerResponse struct {
	ID               int64           `json:"_id"`
	Name             string          `json:"name"`
	Contact          ContactResponse `json:"contact"`
	MembershipStatus string          `json:"membership_status"`
}

// LineItemResponse 订单行响应
type LineItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderResponse 订单响应（原始形态，未做任何连接）
type OrderResponse struct {
	ID             int64              `json:"_id"`
	CustomerID     int64              `json:"customer_id"`
	OrderDate      string             `json:"order_date"`
	DeliveryStatus string             `json:"delivery_status"`
	OrderStatus    string             `json:"order_status"`
	Products       []LineItemResponse `json:"products"`
}
