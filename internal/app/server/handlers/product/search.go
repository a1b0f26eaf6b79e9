package product

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// SearchByName 按名称模糊查询（大小写不敏感），结果按名称升序
func (h *ProductHandler) SearchByName(c *gin.Context) {
	query := c.Query("query")

	products, err := h.productService.SearchProductsByName(c.Request.Context(), query)
	if err != nil {
		log.Printf("[ERROR] search products by name failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, response.FromProductEntities(products))
}
