package etorder

import "errors"

// 错误定义
var (
	ErrInvalidOrderID    = errors.New("invalid order ID")
	ErrInvalidCustomerID = errors.New("invalid customer ID")
	ErrInvalidQuantity   = errors.New("line item quantity must be positive")
)

// LineItem 订单行：一个 (product_id, quantity) 组合
type LineItem struct {
	ProductID int64 `bson:"product_id"` // 商品ID
	Quantity  int   `bson:"quantity"`   // 数量
}

// Order 订单实体
// order_date 按文档库原样保存为 YYYY-MM-DD 字符串，展示格式化放在转换层
type Order struct {
	ID             int64      `bson:"_id"`             // 订单ID
	CustomerID     int64      `bson:"customer_id"`     // 客户ID
	OrderDate      string     `bson:"order_date"`      // 下单日期（YYYY-MM-DD）
	DeliveryStatus string     `bson:"delivery_status"` // 配送状态
	OrderStatus    string     `bson:"order_status"`    // 订单状态
	Products       []LineItem `bson:"products"`        // 订单行列表（可为空）
}

// Validate 读边界数据校验
// 订单级字段（客户、日期、状态）视为单内一致，这是良构输入的前提约定
func (o *Order) Validate() error {
	if o.ID <= 0 {
		return ErrInvalidOrderID
	}
	if o.CustomerID <= 0 {
		return ErrInvalidCustomerID
	}
	for _, item := range o.Products {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}
