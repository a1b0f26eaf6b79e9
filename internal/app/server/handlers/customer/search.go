package customer

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// SearchByName 按姓名模糊查询（大小写不敏感），结果按姓名升序
func (h *CustomerHandler) SearchByName(c *gin.Context) {
	query := c.Query("query")

	customers, err := h.customerService.SearchCustomersByName(c.Request.Context(), query)
	if err != nil {
		log.Printf("[ERROR] search customers by name failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerEntities(customers))
}
