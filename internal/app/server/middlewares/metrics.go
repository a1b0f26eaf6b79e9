package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"ixp/apiserver/internal/app/pkg/metrics"
)

// Metrics 请求指标中间件
// path 维度用路由模板（FullPath），未匹配的请求归到 "unmatched"，避免标签爆炸
func Metrics(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		reg.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
