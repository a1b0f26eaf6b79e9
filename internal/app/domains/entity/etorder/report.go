package etorder

// ProductSummary 订单内按商品聚合后的一行（派生值对象，不落库）
// 同一订单里引用同一商品的重复订单行在这里已合并：数量与小计为求和值，
// 名称与单价取首次出现的商品目录值
type ProductSummary struct {
	ProductName string  // 商品名称
	Quantity    int     // 合并后数量
	Price       float64 // 单价
	TotalPrice  float64 // 小计 = 单价 × 数量（逐行累加，未舍入）
}

// OrderReport Join-and-Reshape 阶段的输出：一单一条
// 金额字段保留未舍入的 float64，两位小数格式化只在展示转换时做
type OrderReport struct {
	ID              int64            // 订单ID
	CustomerID      int64            // 客户ID
	CustomerName    string           // 客户姓名（客户缺失时置空，订单保留）
	OrderDate       string           // 下单日期（仍为存储格式 YYYY-MM-DD）
	Products        []ProductSummary // 商品聚合列表（零行订单为空列表）
	TotalOrderPrice float64          // 订单总价 = Σ 行小计
	TotalQuantity   int              // 订单总数量 = Σ 行数量
	DeliveryStatus  string           // 配送状态
	OrderStatus     string           // 订单状态
}

// CustomerSales Sales-Total 阶段的输出：客户维度的终身销售额
type CustomerSales struct {
	CustomerID int64   // 客户ID
	TotalSales float64 // Σ 数量 × 当前目录单价（未舍入）
}

// CustomerOrderCount 客户维度的订单数统计
type CustomerOrderCount struct {
	CustomerID  int64 // 客户ID
	TotalOrders int   // 订单数
}
