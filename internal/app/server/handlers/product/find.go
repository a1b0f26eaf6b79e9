package product

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/apimodel/response"
	"ixp/apiserver/internal/app/pkg/ginx"
)

// ByIDs 按商品ID集合查询，?product_ids=201&product_ids=202
func (h *ProductHandler) ByIDs(c *gin.Context) {
	ids := ginx.QueryInt64s(c, "product_ids")

	products, err := h.productService.GetProductsByIDs(c.Request.Context(), ids)
	if err != nil {
		log.Printf("[ERROR] find products by ids failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(products) == 0 {
		ginx.Error(c, http.StatusNotFound, "No products found.")
		return
	}
	c.JSON(http.StatusOK, response.FromProductEntities(products))
}

// ByCategories 按分类集合查询，?category=Sofas&category=Beds
func (h *ProductHandler) ByCategories(c *gin.Context) {
	categories := c.QueryArray("category")

	products, err := h.productService.GetProductsByCategories(c.Request.Context(), categories)
	if err != nil {
		log.Printf("[ERROR] find products by categories failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	if len(products) == 0 {
		ginx.Error(c, http.StatusNotFound, "No products found for the specified category.")
		return
	}
	c.JSON(http.StatusOK, response.FromProductEntities(products))
}

// WithinPriceRange 按价格闭区间查询，命中为空照样返回 200 空数组
func (h *ProductHandler) WithinPriceRange(c *gin.Context) {
	minPrice, err := strconv.ParseFloat(c.Query("min_price"), 64)
	if err != nil {
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	maxPrice, err := strconv.ParseFloat(c.Query("max_price"), 64)
	if err != nil {
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	products, err := h.productService.GetProductsWithinPriceRange(c.Request.Context(), minPrice, maxPrice)
	if err != nil {
		log.Printf("[ERROR] find products within price range failed: %v", err)
		ginx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, response.FromProductEntities(products))
}
