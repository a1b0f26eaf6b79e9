package product

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// All 查询全部商品
func (h *ProductHandler) All(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		log.Printf("[ERROR] list products failed: %v", err)
		ginx.ErrorWithDetails(c, http.StatusInternalServerError, "An error occurred while fetching the products.", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProductEntities(products))
}

// SortedByPrice 全量商品按价格排序，sort_order=asc|desc，缺省升序
func (h *ProductHandler) SortedByPrice(c *gin.Context) {
	descending := c.DefaultQuery("sort_order", "asc") == "desc"

	products, err := h.productService.ListProductsSortedByPrice(c.Request.Context(), descending)
	if err != nil {
		log.Printf("[ERROR] list products sorted by price failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, response.FromProductEntities(products))
}
