package etadmin

import "errors"

// 错误定义
var (
	ErrInvalidAdminID  = errors.New("invalid admin ID")
	ErrInvalidUsername = errors.New("username cannot be empty")
	ErrInvalidEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword   = errors.New("password hash cannot be empty")
)

// Admin 管理员实体
// Password 存 bcrypt 哈希，明文只在登录/注册请求中短暂存在
type Admin struct {
	ID           int64  `bson:"_id"`           // 管理员ID（snowflake）
	Fullname     string `bson:"fullname"`      // 全名
	Username     string `bson:"username"`      // 用户名（唯一索引）
	Password     string `bson:"password"`      // bcrypt 哈希
	Email        string `bson:"email"`         // 邮箱（唯一索引）
	ProfilePhoto string `bson:"profile_photo"` // 头像 URL
}

// NewAdmin 创建管理员（工厂方法）
func NewAdmin(id int64, fullname, username, passwordHash, email, profilePhoto string) (*Admin, error) {
	if id <= 0 {
		return nil, ErrInvalidAdminID
	}
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if email == "" {
		return nil, ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, ErrEmptyPassword
	}

	return &Admin{
		ID:           id,
		Fullname:     fullname,
		Username:     username,
		Password:     passwordHash,
		Email:        email,
		ProfilePhoto: profilePhoto,
	}, nil
}
