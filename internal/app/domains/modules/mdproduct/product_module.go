package mdproduct

import (
	"context"

	"ixp/apiserver/internal/app/domains/entity/etproduct"
	"ixp/apiserver/internal/app/domains/repo/rpproduct"
)

// ProductModule 商品模块（数据操作层）
type ProductModule struct {
	productRepo rpproduct.ProductRepository
}

// NewProductModule 创建商品模块
func NewProductModule(productRepo rpproduct.ProductRepository) *ProductModule {
	return &ProductModule{productRepo: productRepo}
}

// ListProducts 查询全部商品
func (m *ProductModule) ListProducts(ctx context.Context) ([]*etproduct.Product, error) {
	return m.productRepo.ListAll(ctx)
}

// GetProductsByIDs 按商品ID集合查询
func (m *ProductModule) GetProductsByIDs(ctx context.Context, ids []int64) ([]*etproduct.Product, error) {
	return m.productRepo.GetByIDs(ctx, ids)
}

// GetProductsByCategories 按分类集合查询
func (m *ProductModule) GetProductsByCategories(ctx context.Context, categories []string) ([]*etproduct.Product, error) {
	return m.productRepo.GetByCategories(ctx, categories)
}

// GetProductsByPriceRange 按价格闭区间查询
func (m *ProductModule) GetProductsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*etproduct.Product, error) {
	return m.productRepo.GetByPriceRange(ctx, minPrice, maxPrice)
}

// SearchProductsByName 按名称模糊查询
func (m *ProductModule) SearchProductsByName(ctx context.Context, query string) ([]*etproduct.Product, error) {
	return m.productRepo.SearchByName(ctx, query)
}

// ListProductsSortedByPrice 全量按价格排序
func (m *ProductModule) ListProductsSortedByPrice(ctx context.Context, descending bool) ([]*etproduct.Product, error) {
	return m.productRepo.ListSortedByPrice(ctx, descending)
}
