package order

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// TotalSales 客户维度终身销售额聚合
func (h *OrderHandler) TotalSales(c *gin.Context) {
	sales, err := h.orderService.TotalSalesPerCustomer(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] total sales per customer failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(sales) == 0 {
		ginx.Error(c, http.StatusNotFound, "No orders found")
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerSales(sales))
}

// TotalOrders 客户维度订单数聚合
func (h *OrderHandler) TotalOrders(c *gin.Context) {
	counts, err := h.orderService.TotalOrdersPerCustomer(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] total orders per customer failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(counts) == 0 {
		ginx.Error(c, http.StatusNotFound, "No customers found")
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerOrderCounts(counts))
}
