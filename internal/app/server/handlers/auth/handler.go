package auth

import (
	"ixp/apiserver/internal/app/domains/services/svauth"
)

// AuthHandler 管理员认证接口
type AuthHandler struct {
	authService *svauth.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authService *svauth.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}
