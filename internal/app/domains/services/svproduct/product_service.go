package svproduct

import (
	"context"

	"ixp/apiserver/internal/app/domains/entity/etproduct"
	"ixp/apiserver/internal/app/domains/modules/mdproduct"
)

// ProductService 商品服务
type ProductService struct {
	productModule *mdproduct.ProductModule
}

// NewProductService 创建商品服务实例
func NewProductService(productModule *mdproduct.ProductModule) *ProductService {
	return &ProductService{productModule: productModule}
}

// ListProducts 查询全部商品
func (s *ProductService) ListProducts(ctx context.Context) ([]*etproduct.Product, error) {
	return s.productModule.ListProducts(ctx)
}

// GetProductsByIDs 按商品ID集合查询
func (s *ProductService) GetProductsByIDs(ctx context.Context, ids []int64) ([]*etproduct.Product, error) {
	return s.productModule.GetProductsByIDs(ctx, ids)
}

// GetProductsByCategories 按分类集合查询
func (s *ProductService) GetProductsByCategories(ctx context.Context, categories []string) ([]*etproduct.Product, error) {
	return s.productModule.GetProductsByCategories(ctx, categories)
}

// GetProductsWithinPriceRange 按价格闭区间查询
func (s *ProductService) GetProductsWithinPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*etproduct.Product, error) {
	return s.productModule.GetProductsByPriceRange(ctx, minPrice, maxPrice)
}

// SearchProductsByName 按名称模糊查询
func (s *ProductService) SearchProductsByName(ctx context.Context, query string) ([]*etproduct.Product, error) {
	return s.productModule.SearchProductsByName(ctx, query)
}

// ListProductsSortedByPrice 全量按价格排序
func (s *ProductService) ListProductsSortedByPrice(ctx context.Context, descending bool) ([]*etproduct.Product, error) {
	return s.productModule.ListProductsSortedByPrice(ctx, descending)
}
