package etcustomer

import "errors"

// 错误定义
var (
	ErrInvalidCustomerID = errors.New("invalid customer ID")
	ErrInvalidName       = errors.New("customer name cannot be empty")
)

// Contact 联系方式（值对象，嵌套文档）
type Contact struct {
	Email   string `bson:"email"`             // 邮箱
	Phone   string `bson:"phone,omitempty"`   // 电话
	Address string `bson:"address,omitempty"` // 地址
}

// Customer 客户实体（本服务只读）
type Customer struct {
	ID               int64   `bson:"_id"`               // 客户ID
	Name             string  `bson:"name"`              // 客户姓名
	Contact          Contact `bson:"contact"`           // 联系方式
	MembershipStatus string  `bson:"membership_status"` // 会员状态
}

// Validate 读边界数据校验
func (c *Customer) Validate() error {
	if c.ID <= 0 {
		return ErrInvalidCustomerID
	}
	if c.Name == "" {
		return ErrInvalidName
	}
	return nil
}
