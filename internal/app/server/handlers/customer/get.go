package customer

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// ByID 按客户ID查询单个客户
func (h *CustomerHandler) ByID(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	if err != nil {
		ginx.Error(c, http.StatusBadRequest, "Missing customer_id parameter")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[ERROR] get customer by id failed: %v", err)
		ginx.ErrorWithDetails(c, http.StatusInternalServerError, "An error occurred while fetching the customer.", err)
		return
	}
	if customer == nil {
		// 404 附带回显查询的客户ID（历史接口的既定行为）
		c.JSON(http.StatusNotFound, gin.H{"error": "No customer found.", "See": customerID})
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerEntity(customer))
}
