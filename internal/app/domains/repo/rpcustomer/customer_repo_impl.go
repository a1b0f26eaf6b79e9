package rpcustomer

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ixp/apiserver/internal/app/domains/entity/etcustomer"
)

// CustomerRepositoryImpl 客户仓储实现（MongoDB）
type CustomerRepositoryImpl struct {
	coll *mongo.Collection
}

// NewCustomerRepository 创建客户仓储实例
func NewCustomerRepository(db *mongo.Database) CustomerRepository {
	return &CustomerRepositoryImpl{coll: db.Collection("customers")}
}

// ListAll 返回全部客户
func (r *CustomerRepositoryImpl) ListAll(ctx context.Context) ([]*etcustomer.Customer, error) {
	return r.find(ctx, bson.M{})
}

// GetByID 按客户ID查询，未命中返回 nil, nil
func (r *CustomerRepositoryImpl) GetByID(ctx context.Context, customerID int64) (*etcustomer.Customer, error) {
	var customer etcustomer.Customer
	err := r.coll.FindOne(ctx, bson.M{"_id": customerID}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	if err := customer.Validate(); err != nil {
		return nil, fmt.Errorf("invalid customer document %d: %w", customer.ID, err)
	}
	return &customer, nil
}

// GetByMembershipStatus 按会员状态查询
func (r *CustomerRepositoryImpl) GetByMembershipStatus(ctx context.Context, status string) ([]*etcustomer.Customer, error) {
	return r.find(ctx, bson.M{"membership_status": status})
}

// GetByEmail 按嵌套联系邮箱精确查询（区分大小写）
func (r *CustomerRepositoryImpl) GetByEmail(ctx context.Context, email string) ([]*etcustomer.Customer, error) {
	return r.find(ctx, bson.M{"contact.email": email})
}

// SearchByName 按姓名模糊查询（不区分大小写），结果按姓名排序
func (r *CustomerRepositoryImpl) SearchByName(ctx context.Context, query string) ([]*etcustomer.Customer, error) {
	filter := bson.M{"name": bson.M{"$regex": query, "$options": "i"}}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.find(ctx, filter, opts)
}

// find 统一查询出口，负责解码与读边界校验
func (r *CustomerRepositoryImpl) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]*etcustomer.Customer, error) {
	cur, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	var customers []*etcustomer.Customer
	if err := cur.All(ctx, &customers); err != nil {
		return nil, err
	}
	for _, customer := range customers {
		if err := customer.Validate(); err != nil {
			return nil, fmt.Errorf("invalid customer document %d: %w", customer.ID, err)
		}
	}
	return customers, nil
}
