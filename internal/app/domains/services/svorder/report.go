package svorder

import (
	"ixp/apiserver/internal/app/domains/entity/etcustomer"
	"ixp/apiserver/internal/app/domains/entity/etorder"
	"ixp/apiserver/internal/app/domains/entity/etproduct"
)

// Join-and-Reshape 阶段与 Sales-Total 阶段的纯函数实现。
// 两个阶段只依赖整表读入的切片，不碰存储，单测可以直接喂数据。

// buildOrderReports Join-and-Reshape：一单一条报表记录
//
// 每个订单行等价于拍平后的一行：先连接客户姓名与商品目录（等值连接），
// 算出行小计 = 单价 × 数量；同一订单内引用同一商品的行合并（数量、小计求和，
// 名称单价取首见值）；最后对合并行求和得到订单级总价与总数量。
//
// 边界行为：
//   - 引用不存在商品的订单行直接丢弃，订单合计只反映剩余有效行
//   - 客户不存在时保留订单，姓名置空
//   - 零行订单保留，商品列表为空、合计为零
//
// 输出顺序跟随订单集合的自然顺序，商品列表按首次出现顺序排列
func buildOrderReports(
	orders []*etorder.Order,
	customers []*etcustomer.Customer,
	products []*etproduct.Product,
) []*etorder.OrderReport {
	customerByID := make(map[int64]*etcustomer.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}
	productByID := make(map[int64]*etproduct.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	reports := make([]*etorder.OrderReport, 0, len(orders))
	for _, order := range orders {
		report := &etorder.OrderReport{
			ID:             order.ID,
			CustomerID:     order.CustomerID,
			OrderDate:      order.OrderDate,
			Products:       make([]etorder.ProductSummary, 0, len(order.Products)),
			DeliveryStatus: order.DeliveryStatus,
			OrderStatus:    order.OrderStatus,
		}
		if customer, ok := customerByID[order.CustomerID]; ok {
			report.CustomerName = customer.Name
		}

		// (订单, 商品) 维度的合并：记录商品在列表中的下标
		lineIndex := make(map[int64]int, len(order.Products))
		for _, item := range order.Products {
			product, ok := productByID[item.ProductID]
			if !ok {
				continue
			}
			subtotal := product.Price * float64(item.Quantity)
			if i, seen := lineIndex[item.ProductID]; seen {
				report.Products[i].Quantity += item.Quantity
				report.Products[i].TotalPrice += subtotal
				continue
			}
			lineIndex[item.ProductID] = len(report.Products)
			report.Products = append(report.Products, etorder.ProductSummary{
				ProductName: product.Name,
				Quantity:    item.Quantity,
				Price:       product.Price,
				TotalPrice:  subtotal,
			})
		}

		// 订单级合计永远从自身的行重算，不信任任何预存字段
		for _, line := range report.Products {
			report.TotalOrderPrice += line.TotalPrice
			report.TotalQuantity += line.Quantity
		}

		reports = append(reports, report)
	}
	return reports
}

// salesTotals Sales-Total：客户ID → 终身销售额
//
// 拍平全部订单行，连接商品取当前目录单价，数量 × 单价按客户累加。
// 估值用的是查询时刻的目录价，不是下单时的历史价。累加过程不舍入，
// 两位小数只在展示时格式化。没有订单的客户不出现在结果里，调用方缺省按 0 处理。
func salesTotals(orders []*etorder.Order, products []*etproduct.Product) map[int64]float64 {
	productByID := make(map[int64]*etproduct.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	totals := make(map[int64]float64)
	for _, order := range orders {
		for _, item := range order.Products {
			product, ok := productByID[item.ProductID]
			if !ok {
				continue
			}
			totals[order.CustomerID] += float64(item.Quantity) * product.Price
		}
	}
	return totals
}
