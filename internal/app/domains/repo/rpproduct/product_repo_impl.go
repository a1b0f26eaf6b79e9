package rpproduct

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ixp/apiserver/internal/app/domains/entity/etproduct"
)

// ProductRepositoryImpl 商品仓储实现（MongoDB）
type ProductRepositoryImpl struct {
	coll *mongo.Collection
}

// NewProductRepository 创建商品仓储实例
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &ProductRepositoryImpl{coll: db.Collection("products")}
}

// ListAll 返回全部商品
func (r *ProductRepositoryImpl) ListAll(ctx context.Context) ([]*etproduct.Product, error) {
	return r.find(ctx, bson.M{})
}

// GetByIDs 按商品ID集合查询
func (r *ProductRepositoryImpl) GetByIDs(ctx context.Context, ids []int64) ([]*etproduct.Product, error) {
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// GetByCategories 按分类集合查询
func (r *ProductRepositoryImpl) GetByCategories(ctx context.Context, categories []string) ([]*etproduct.Product, error) {
	return r.find(ctx, bson.M{"category": bson.M{"$in": categories}})
}

// GetByPriceRange 按价格闭区间查询
func (r *ProductRepositoryImpl) GetByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*etproduct.Product, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$gte": minPrice, "$lte": maxPrice}})
}

// SearchByName 按名称模糊查询（不区分大小写），结果按名称排序
func (r *ProductRepositoryImpl) SearchByName(ctx context.Context, query string) ([]*etproduct.Product, error) {
	filter := bson.M{"name": bson.M{"$regex": query, "$options": "i"}}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.find(ctx, filter, opts)
}

// ListSortedByPrice 全量按价格排序
func (r *ProductRepositoryImpl) ListSortedByPrice(ctx context.Context, descending bool) ([]*etproduct.Product, error) {
	order := 1
	if descending {
		order = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: "price", Value: order}})
	return r.find(ctx, bson.M{}, opts)
}

// find 统一查询出口，负责解码与读边界校验
func (r *ProductRepositoryImpl) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]*etproduct.Product, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	var products []*etproduct.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	for _, product := range products {
		if err := product.Validate(); err != nil {
			return nil, fmt.Errorf("invalid product document %d: %w", product.ID, err)
		}
	}
	return products, nil
}
