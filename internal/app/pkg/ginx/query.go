package ginx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryInt64s 读取重复出现的整数查询参数（?ids=1&ids=2）
// 解析失败的值直接丢弃，不报错
func QueryInt64s(c *gin.Context, key string) []int64 {
	raw := c.QueryArray(key)
	out := make([]int64, 0, len(raw))
	for _, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
