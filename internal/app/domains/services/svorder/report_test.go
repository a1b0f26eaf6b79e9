package svorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ixp/apiserver/internal/app/domains/entity/etcustomer"
	"ixp/apiserver/internal/app/domains/entity/etorder"
	"ixp/apiserver/internal/app/domains/entity/etproduct"
)

func sampleProducts() []*etproduct.Product {
	return []*etproduct.Product{
		{ID: 201, Name: "MALM Bed Frame", Price: 25, Category: "Beds"},
		{ID: 202, Name: "KALLAX Shelf", Price: 40, Category: "Storage"},
		{ID: 203, Name: "POANG Chair", Price: 99.99, Category: "Chairs"},
	}
}

func sampleCustomers() []*etcustomer.Customer {
	return []*etcustomer.Customer{
		{ID: 301, Name: "Alice Andersson", MembershipStatus: "Gold"},
		{ID: 302, Name: "Bob Bergman", MembershipStatus: "Silver"},
	}
}

func TestBuildOrderReports(t *testing.T) {
	orders := []*etorder.Order{
		{
			ID: 401, CustomerID: 301, OrderDate: "2024-03-15",
			DeliveryStatus: "Pending", OrderStatus: "Awaiting",
			Products: []etorder.LineItem{
				{ProductID: 201, Quantity: 2},
				{ProductID: 202, Quantity: 1},
			},
		},
	}

	reports := buildOrderReports(orders, sampleCustomers(), sampleProducts())
	require.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, int64(401), report.ID)
	assert.Equal(t, int64(301), report.CustomerID)
	assert.Equal(t, "Alice Andersson", report.CustomerName)
	assert.Equal(t, "2024-03-15", report.OrderDate)
	assert.Equal(t, "Awaiting", report.OrderStatus)
	assert.Equal(t, "Pending", report.DeliveryStatus)

	require.Len(t, report.Products, 2)
	assert.Equal(t, "MALM Bed Frame", report.Products[0].ProductName)
	assert.Equal(t, 2, report.Products[0].Quantity)
	assert.InDelta(t, 50.0, report.Products[0].TotalPrice, 1e-9)
	assert.Equal(t, "KALLAX Shelf", report.Products[1].ProductName)
	assert.InDelta(t, 40.0, report.Products[1].TotalPrice, 1e-9)

	// 合计永远从行重算
	assert.InDelta(t, 90.0, report.TotalOrderPrice, 1e-9)
	assert.Equal(t, 3, report.TotalQuantity)
}

func TestBuildOrderReportsMergesDuplicateLines(t *testing.T) {
	// 同一订单里重复引用同一商品的行合并成一行
	orders := []*etorder.Order{
		{
			ID: 402, CustomerID: 301, OrderDate: "2024-04-01",
			Products: []etorder.LineItem{
				{ProductID: 201, Quantity: 1},
				{ProductID: 202, Quantity: 1},
				{ProductID: 201, Quantity: 3},
			},
		},
	}

	reports := buildOrderReports(orders, sampleCustomers(), sampleProducts())
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Products, 2)

	merged := reports[0].Products[0]
	assert.Equal(t, "MALM Bed Frame", merged.ProductName)
	assert.Equal(t, 4, merged.Quantity)
	assert.InDelta(t, 100.0, merged.TotalPrice, 1e-9)
	assert.Equal(t, 5, reports[0].TotalQuantity)
	assert.InDelta(t, 140.0, reports[0].TotalOrderPrice, 1e-9)
}

func TestBuildOrderReportsDropsUnknownProductLines(t *testing.T) {
	orders := []*etorder.Order{
		{
			ID: 403, CustomerID: 301, OrderDate: "2024-04-02",
			Products: []etorder.LineItem{
				{ProductID: 201, Quantity: 2},
				{ProductID: 999, Quantity: 5}, // 目录里不存在
			},
		},
	}

	reports := buildOrderReports(orders, sampleCustomers(), sampleProducts())
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Products, 1)
	assert.InDelta(t, 50.0, reports[0].TotalOrderPrice, 1e-9)
	assert.Equal(t, 2, reports[0].TotalQuantity)
}

func TestBuildOrderReportsKeepsUnknownCustomer(t *testing.T) {
	orders := []*etorder.Order{
		{
			ID: 404, CustomerID: 999, OrderDate: "2024-04-03",
			Products: []etorder.LineItem{{ProductID: 201, Quantity: 1}},
		},
	}

	reports := buildOrderReports(orders, sampleCustomers(), sampleProducts())
	require.Len(t, reports, 1)
	assert.Empty(t, reports[0].CustomerName)
	assert.InDelta(t, 25.0, reports[0].TotalOrderPrice, 1e-9)
}

func TestBuildOrderReportsKeepsEmptyOrder(t *testing.T) {
	orders := []*etorder.Order{
		{ID: 405, CustomerID: 301, OrderDate: "2024-04-04"},
	}

	reports := buildOrderReports(orders, sampleCustomers(), sampleProducts())
	require.Len(t, reports, 1)
	assert.Empty(t, reports[0].Products)
	assert.Zero(t, reports[0].TotalOrderPrice)
	assert.Zero(t, reports[0].TotalQuantity)
}

func TestSalesTotals(t *testing.T) {
	orders := []*etorder.Order{
		{ID: 401, CustomerID: 301, Products: []etorder.LineItem{
			{ProductID: 201, Quantity: 2},
			{ProductID: 202, Quantity: 1},
		}},
		{ID: 402, CustomerID: 301, Products: []etorder.LineItem{
			{ProductID: 203, Quantity: 1},
		}},
		{ID: 403, CustomerID: 302, Products: []etorder.LineItem{
			{ProductID: 201, Quantity: 1},
			{ProductID: 999, Quantity: 7}, // 未知商品不计入
		}},
	}

	totals := salesTotals(orders, sampleProducts())
	require.Len(t, totals, 2)
	assert.InDelta(t, 189.99, totals[301], 1e-9)
	assert.InDelta(t, 25.0, totals[302], 1e-9)
}

func TestSalesTotalsEmpty(t *testing.T) {
	totals := salesTotals(nil, sampleProducts())
	assert.Empty(t, totals)
}
