package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewDatabase 建立 MongoDB 连接并返回库句柄
// 进程启动时建一次，连接句柄注入各仓储复用；返回的 cleanup 负责断开
func NewDatabase(ctx context.Context, uri, dbName string) (*mongo.Database, func(), error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb failed: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongodb failed: %w", err)
	}

	cleanup := func() {
		_ = client.Disconnect(context.Background())
	}
	return client.Database(dbName), cleanup, nil
}

// Ping 连通性检查，db_connectivity 接口用
func Ping(ctx context.Context, db *mongo.Database) error {
	return db.Client().Ping(ctx, readpref.Primary())
}
