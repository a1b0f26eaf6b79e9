package jwtx

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 错误定义
var (
	ErrInvalidToken = errors.New("token is not valid")
)

// Claims 管理员 token 载荷
// id 按历史接口约定是字符串形式的管理员ID
type Claims struct {
	AdminID  string `json:"id"`
	Username string `json:"user"`
	jwt.RegisteredClaims
}

// ParseAdminID 取回整数形式的管理员ID
func (c *Claims) ParseAdminID() (int64, error) {
	return strconv.ParseInt(c.AdminID, 10, 64)
}

// GenerateToken 签发 HS256 token，iat 为当前时间，exp 为 now+ttl
func GenerateToken(secret string, adminID int64, username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		AdminID:  strconv.FormatInt(adminID, 10),
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken 校验签名与有效期并返回载荷
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
