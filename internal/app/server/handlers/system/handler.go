package system

import "context"

// SystemHandler 连通性探活接口
type SystemHandler struct {
	ping func(ctx context.Context) error
}

// NewSystemHandler 创建 SystemHandler
func NewSystemHandler(ping func(ctx context.Context) error) *SystemHandler {
	return &SystemHandler{ping: ping}
}
