package rpproduct

import (
	"context"

	"ixp/apiserver/internal/app/domains/entity/etproduct"
)

// ProductRepository 商品仓储接口（只读）
// 查询参数在实现里翻译成文档库过滤条件
type ProductRepository interface {
	// ListAll 返回全部商品
	ListAll(ctx context.Context) ([]*etproduct.Product, error)

	// GetByIDs 按商品ID集合查询
	GetByIDs(ctx context.Context, ids []int64) ([]*etproduct.Product, error)

	// GetByCategories 按分类集合查询
	GetByCategories(ctx context.Context, categories []string) ([]*etproduct.Product, error)

	// GetByPriceRange 按价格闭区间查询
	GetByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*etproduct.Product, error)

	// SearchByName 按名称模糊查询（不区分大小写），结果按名称排序
	SearchByName(ctx context.Context, query string) ([]*etproduct.Product, error)

	// ListSortedByPrice 全量按价格排序
	ListSortedByPrice(ctx context.Context, descending bool) ([]*etproduct.Product, error)
}
