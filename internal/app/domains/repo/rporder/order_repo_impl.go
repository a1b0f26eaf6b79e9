package rporder

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ixp/apiserver/internal/app/domains/entity/etorder"
)

// OrderRepositoryImpl 订单仓储实现（MongoDB）
type OrderRepositoryImpl struct {
	coll *mongo.Collection
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &OrderRepositoryImpl{coll: db.Collection("orders")}
}

// ListAll 返回全部订单
func (r *OrderRepositoryImpl) ListAll(ctx context.Context) ([]*etorder.Order, error) {
	return r.find(ctx, bson.M{})
}

// GetByIDs 按订单ID集合查询
func (r *OrderRepositoryImpl) GetByIDs(ctx context.Context, ids []int64) ([]*etorder.Order, error) {
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// UpdateStatus 条件更新单个订单的 order_status 字段
// 依赖文档库的单文档原子性，并发更新同一订单时后写覆盖
func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, orderID int64, status string) (bool, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{"order_status": status}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// find 统一查询出口，负责解码与读边界校验
func (r *OrderRepositoryImpl) find(ctx context.Context, filter interface{}) ([]*etorder.Order, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var orders []*etorder.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	for _, order := range orders {
		if err := order.Validate(); err != nil {
			return nil, fmt.Errorf("invalid order document %d: %w", order.ID, err)
		}
	}
	return orders, nil
}
