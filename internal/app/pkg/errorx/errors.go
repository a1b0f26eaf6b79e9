package errorx

import "errors"

// 业务错误定义，handler 层据此映射 HTTP 状态码与用户提示
var (
	ErrAdminNotFound    = errors.New("admin not found")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrPasswordRequired = errors.New("password is required")
	ErrWrongPassword    = errors.New("password is incorrect")
)
