package response

// TokenResponse 登录成功响应
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupResponse 注册成功响应
type SignupResponse struct {
	Message string `json:"message"`
	AdminID string `json:"admin_id"`
}

// AdminResponse 当前管理员响应
// 口令哈希不回传
type AdminResponse struct {
	ID           string `json:"id"`
	Fullname     string `json:"fullname"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfilePhoto string `json:"profile_photo"`
}
