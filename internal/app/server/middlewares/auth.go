package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/domains/repo/rptoken"
	"ixp/apiserver/internal/app/pkg/jwtx"
)

// token 所在的请求头与 Context 键
const (
	TokenHeader  = "x-access-token"
	CtxClaimsKey = "admin_claims"
)

// JWTAuth token 校验中间件，只挂在需要登录态的接口上
// 校验失败一律 401；已注销（黑名单）的 token 按无效处理，黑名单查询
// 出错时拒绝放行（宁可误杀不可漏放）
func JWTAuth(secret string, tokens rptoken.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is missing"})
			return
		}

		claims, err := jwtx.ParseToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Token is invalid",
				"error":   err.Error(),
			})
			return
		}

		blacklisted, err := tokens.IsBlacklisted(c.Request.Context(), token)
		if err != nil || blacklisted {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is invalid"})
			return
		}

		c.Set(CtxClaimsKey, claims)
		c.Next()
	}
}
