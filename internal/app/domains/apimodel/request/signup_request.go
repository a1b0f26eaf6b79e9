package request

// SignupRequest 管理员注册请求（DTO）
// password 缺失时返回历史接口的固定提示，所以不用 binding 校验
type SignupRequest struct {
	Fullname     string `json:"fullname"`
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password"`
	Email        string `json:"email" binding:"required,email"`
	ProfilePhoto string `json:"profile_photo"`
}

// LoginRequest 管理员登录请求（DTO）
// username 字段同时接受用户名或邮箱
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
