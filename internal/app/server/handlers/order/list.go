package order

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// All 查询全部订单（原始形态，不做富化）
func (h *OrderHandler) All(c *gin.Context) {
	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] list orders failed: %v", err)
		ginx.ErrorWithDetails(c, http.StatusInternalServerError, "An error occurred while fetching the orders.", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrderEntities(orders))
}

// ByIDs 按订单ID集合查询，?order_ids=401&order_ids=402
// 未命中时 404 的 error 字段回显查询的ID列表（历史接口的既定行为）
func (h *OrderHandler) ByIDs(c *gin.Context) {
	ids := ginx.QueryInt64s(c, "order_ids")

	orders, err := h.orderService.GetOrdersByIDs(c.Request.Context(), ids)
	if err != nil {
		log.Printf("[ERROR] find orders by ids failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": ids})
		return
	}
	c.JSON(http.StatusOK, response.FromOrderEntities(orders))
}
