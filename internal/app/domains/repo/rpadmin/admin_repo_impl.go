package rpadmin

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ixp/apiserver/internal/app/domains/entity/etadmin"
)

// AdminRepositoryImpl 管理员仓储实现（MongoDB）
type AdminRepositoryImpl struct {
	coll *mongo.Collection
}

// NewAdminRepository 创建管理员仓储实例
func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &AdminRepositoryImpl{coll: db.Collection("admins")}
}

// Create 新建管理员
func (r *AdminRepositoryImpl) Create(ctx context.Context, admin *etadmin.Admin) error {
	_, err := r.coll.InsertOne(ctx, admin)
	return err
}

// GetByID 按ID查询，未命中返回 nil, nil
func (r *AdminRepositoryImpl) GetByID(ctx context.Context, adminID int64) (*etadmin.Admin, error) {
	return r.findOne(ctx, bson.M{"_id": adminID})
}

// GetByUsername 按用户名查询，未命中返回 nil, nil
func (r *AdminRepositoryImpl) GetByUsername(ctx context.Context, username string) (*etadmin.Admin, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// GetByEmail 按邮箱查询（注册查重用），未命中返回 nil, nil
func (r *AdminRepositoryImpl) GetByEmail(ctx context.Context, email string) (*etadmin.Admin, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// EnsureIndexes 保证 username/email 的唯一索引存在
// 与注册时的应用层查重互为兜底，防止并发注册写入重复账号
func (r *AdminRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (r *AdminRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*etadmin.Admin, error) {
	var admin etadmin.Admin
	err := r.coll.FindOne(ctx, filter).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
