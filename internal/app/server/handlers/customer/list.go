package customer

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// All 查询全部客户
func (h *CustomerHandler) All(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] list customers failed: %v", err)
		ginx.ErrorWithDetails(c, http.StatusInternalServerError, "An error occurred while fetching the customers.", err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerEntities(customers))
}
