package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// token 黑名单的键前缀
const blacklistPrefix = "ixp:token:blacklist:"

// TokenStore token 黑名单的 Redis 实现
// 键带 TTL，token 自然过期后黑名单记录随之清掉，不需要额外清理任务
type TokenStore struct {
	rdb *redis.Client
}

// NewTokenStore 创建黑名单存储，支持密码认证
func NewTokenStore(addr, password string, db int) (*TokenStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &TokenStore{rdb: rdb}, nil
}

// Blacklist 拉黑 token，ttl 为 token 剩余有效期
func (s *TokenStore) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// token 已经过期，留一个短暂的兜底窗口
		ttl = time.Minute
	}
	return s.rdb.Set(ctx, blacklistPrefix+token, "1", ttl).Err()
}

// IsBlacklisted 查询 token 是否已被拉黑
func (s *TokenStore) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close 关闭连接
func (s *TokenStore) Close() error {
	return s.rdb.Close()
}
