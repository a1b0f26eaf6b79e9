package rptoken

import (
	"context"
	"time"
)

// TokenStore 已注销 token 的黑名单
// 注销时把 token 放进黑名单直到它自然过期，校验中间件据此拒绝已注销的 token
type TokenStore interface {
	// Blacklist 拉黑 token，ttl 为 token 剩余有效期
	Blacklist(ctx context.Context, token string, ttl time.Duration) error

	// IsBlacklisted 查询 token 是否已被拉黑
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}
