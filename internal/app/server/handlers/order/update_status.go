package order

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/request"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// UpdateStatus 条件更新订单状态
// 状态值任意字符串均接受，只校验必填
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestValidation(c, err)
		return
	}

	matched, err := h.orderService.UpdateOrderStatus(c.Request.Context(), req.OrderID, req.OrderStatus)
	if err != nil {
		log.Printf("[ERROR] update order status failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if !matched {
		ginx.Message(c, http.StatusNotFound, "Failed to update the status for this order. Please try again!")
		return
	}
	ginx.Message(c, http.StatusOK, fmt.Sprintf("Order %d marked as %s successfully !", req.OrderID, req.OrderStatus))
}
