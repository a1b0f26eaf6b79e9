package etproduct

import "errors"

// 错误定义
var (
	ErrInvalidProductID = errors.New("invalid product ID")
	ErrInvalidName      = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("product price cannot be negative")
)

// Product 商品实体（目录数据，本服务只读）
type Product struct {
	ID       int64   `bson:"_id"`      // 商品ID
	Name     string  `bson:"name"`     // 商品名称
	Price    float64 `bson:"price"`    // 单价（当前目录价）
	Category string  `bson:"category"` // 分类
}

// Validate 读边界数据校验
// 文档库中的记录没有编译期形状，读出后统一校验，避免脏数据在聚合阶段炸掉
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return ErrInvalidProductID
	}
	if p.Name == "" {
		return ErrInvalidName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}
