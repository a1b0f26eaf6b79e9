package response

import (
	"fmt"
	"strconv"
	"time"

	"ixp/apiserver/internal/app/domains/entity/etadmin"
	"ixp/apiserver/internal/app/domains/entity/etcustomer"
	"ixp/apiserver/internal/app/domains/entity/etorder"
	"ixp/apiserver/internal/app/domains/entity/etproduct"
)

// 日期的存储格式与展示格式
const (
	storedDateLayout  = "2006-01-02"
	displayDateLayout = "02-01-2006"
)

// FromProductEntity 从领域对象转换为响应 DTO
func FromProductEntity(product *etproduct.Product) *ProductResponse {
	return &ProductResponse{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Category: product.Category,
	}
}

// FromProductEntities 批量转换商品
func FromProductEntities(products []*etproduct.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProductEntity(p))
	}
	return out
}

// FromCustomerEntity 从领域对象转换为响应 DTO
func FromCustomerEntity(customer *etcustomer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:   customer.ID,
		Name: customer.Name,
		Contact: ContactResponse{
			Email:   customer.Contact.Email,
			Phone:   customer.Contact.Phone,
			Address: customer.Contact.Address,
		},
		MembershipStatus: customer.MembershipStatus,
	}
}

// FromCustomerEntities 批量转换客户
func FromCustomerEntities(customers []*etcustomer.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomerEntity(c))
	}
	return out
}

// FromOrderEntity 从领域对象转换为响应 DTO（原始订单形态）
func FromOrderEntity(order *etorder.Order) *OrderResponse {
	items := make([]LineItemResponse, 0, len(order.Products))
	for _, item := range order.Products {
		items = append(items, LineItemResponse{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return &OrderResponse{
		ID:             order.ID,
		CustomerID:     order.CustomerID,
		OrderDate:      order.OrderDate,
		DeliveryStatus: order.DeliveryStatus,
		OrderStatus:    order.OrderStatus,
		Products:       items,
	}
}

// FromOrderEntities 批量转换订单
func FromOrderEntities(orders []*etorder.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrderEntity(o))
	}
	return out
}

// FromOrderReport Merge/Transform：报表记录 + 销售额映射 → 对外富化订单
//
// 改名到对外字段、日期转展示格式、金额转两位小数字符串（round-half-even，
// 每个字段独立从未舍入值格式化）、总数量从行重算、按客户拼接终身销售额。
// 存储日期不符合 YYYY-MM-DD 时返回错误，由接口边界映射为 500
func FromOrderReport(report *etorder.OrderReport, sales map[int64]float64) (*EnrichedOrderResponse, error) {
	date, err := time.Parse(storedDateLayout, report.OrderDate)
	if err != nil {
		return nil, fmt.Errorf("malformed order_date %q on order %d: %w", report.OrderDate, report.ID, err)
	}

	lines := make([]*EnrichedProductLine, 0, len(report.Products))
	totalQuantity := 0
	for _, line := range report.Products {
		lines = append(lines, &EnrichedProductLine{
			Name:       line.ProductName,
			Quantity:   line.Quantity,
			Price:      line.Price,
			TotalPrice: formatMoney(line.TotalPrice),
		})
		totalQuantity += line.Quantity
	}

	resp := &EnrichedOrderResponse{
		CustomerID:     report.CustomerID,
		CustomerName:   report.CustomerName,
		OrderDate:      date.Format(displayDateLayout),
		Products:       lines,
		TotalPrice:     formatMoney(report.TotalOrderPrice),
		TotalQuantity:  totalQuantity,
		TotalSales:     0,
		DeliveryStatus: report.DeliveryStatus,
		OrderStatus:    report.OrderStatus,
		ID:             report.ID,
	}
	if total, ok := sales[report.CustomerID]; ok {
		resp.TotalSales = formatMoney(total)
	}
	return resp, nil
}

// FromOrderReports 批量 Merge/Transform，任何一单失败则整体失败（不返回部分结果）
func FromOrderReports(reports []*etorder.OrderReport, sales map[int64]float64) ([]*EnrichedOrderResponse, error) {
	out := make([]*EnrichedOrderResponse, 0, len(reports))
	for _, report := range reports {
		resp, err := FromOrderReport(report, sales)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// FromCustomerSales 批量转换销售额聚合，数值在这里舍入到两位小数
func FromCustomerSales(sales []etorder.CustomerSales) []*CustomerSalesResponse {
	out := make([]*CustomerSalesResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, &CustomerSalesResponse{
			CustomerID: s.CustomerID,
			TotalSale:  roundMoney(s.TotalSales),
		})
	}
	return out
}

// FromCustomerOrderCounts 批量转换订单数聚合
func FromCustomerOrderCounts(counts []etorder.CustomerOrderCount) []*CustomerOrderCountResponse {
	out := make([]*CustomerOrderCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, &CustomerOrderCountResponse{
			CustomerID:  c.CustomerID,
			TotalOrders: c.TotalOrders,
		})
	}
	return out
}

// FromAdminEntity 从领域对象转换为响应 DTO，口令哈希不回传
func FromAdminEntity(admin *etadmin.Admin) *AdminResponse {
	return &AdminResponse{
		ID:           strconv.FormatInt(admin.ID, 10),
		Fullname:     admin.Fullname,
		Username:     admin.Username,
		Email:        admin.Email,
		ProfilePhoto: admin.ProfilePhoto,
	}
}

// formatMoney 两位小数字符串，%.2f 的舍入即 round-half-even
func formatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// roundMoney 数值舍入到两位小数（total_sale 字段对外是数字）
func roundMoney(v float64) float64 {
	s, _ := strconv.ParseFloat(fmt.Sprintf("%.2f", v), 64)
	return s
}
