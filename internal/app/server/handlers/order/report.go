package order

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// WithDetails 富化订单报表：连接客户与商品、重算金额、拼接客户终身销售额
// 任一环节出错整体 500，不返回部分结果
func (h *OrderHandler) WithDetails(c *gin.Context) {
	reports, sales, err := h.orderService.OrderReports(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] build order reports failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	enriched, err := response.FromOrderReports(reports, sales)
	if err != nil {
		log.Printf("[ERROR] transform order reports failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, enriched)
}

// WithProductCount 按商品行数过滤富化订单，?num_products=2
// 行数按报表里的行计（重复商品行已合并、未知商品行已剔除）
func (h *OrderHandler) WithProductCount(c *gin.Context) {
	size, err := strconv.Atoi(c.Query("num_products"))
	if err != nil {
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	reports, sales, err := h.orderService.OrderReports(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] build order reports failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	enriched, err := response.FromOrderReports(reports, sales)
	if err != nil {
		log.Printf("[ERROR] transform order reports failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	filtered := make([]*response.EnrichedOrderResponse, 0, len(enriched))
	for _, order := range enriched {
		if len(order.Products) == size {
			filtered = append(filtered, order)
		}
	}
	c.JSON(http.StatusOK, filtered)
}
