package product

import (
	"ixp/apiserver/internal/app/domains/services/svproduct"
)

// ProductHandler 商品查询接口
type ProductHandler struct {
	productService *svproduct.ProductService
}

// NewProductHandler 创建 ProductHandler
func NewProductHandler(productService *svproduct.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}
