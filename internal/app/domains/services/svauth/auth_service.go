package svauth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ixp/apiserver/internal/app/domains/entity/etadmin"
	"ixp/apiserver/internal/app/domains/modules/mdadmin"
	"ixp/apiserver/internal/app/pkg/errorx"
	"ixp/apiserver/internal/app/pkg/idgen"
	"ixp/apiserver/internal/app/pkg/jwtx"
)

// AuthService 管理员认证服务
type AuthService struct {
	adminModule *mdadmin.AdminModule
	secret      string
	tokenTTL    time.Duration
}

// NewAuthService 创建认证服务实例
func NewAuthService(adminModule *mdadmin.AdminModule, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		adminModule: adminModule,
		secret:      secret,
		tokenTTL:    tokenTTL,
	}
}

// Signup 注册管理员
// 1. 邮箱查重
// 2. bcrypt 哈希口令
// 3. 生成分布式ID并落库
func (s *AuthService) Signup(ctx context.Context, fullname, username, password, email, profilePhoto string) (*etadmin.Admin, error) {
	if password == "" {
		return nil, errorx.ErrPasswordRequired
	}

	existing, err := s.adminModule.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email duplicate failed: %w", err)
	}
	if existing != nil {
		return nil, errorx.ErrEmailRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	admin, err := etadmin.NewAdmin(idgen.GenerateID(), fullname, username, string(hash), email, profilePhoto)
	if err != nil {
		return nil, fmt.Errorf("create admin entity failed: %w", err)
	}

	if err := s.adminModule.CreateAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("save admin failed: %w", err)
	}
	return admin, nil
}

// Login 凭据校验并签发 token
// username 参数先按用户名、再按邮箱匹配（前端登录框两者通用）
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.adminModule.GetAdminByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("lookup admin failed: %w", err)
	}
	if admin == nil {
		admin, err = s.adminModule.GetAdminByEmail(ctx, username)
		if err != nil {
			return "", fmt.Errorf("lookup admin failed: %w", err)
		}
	}
	if admin == nil {
		return "", errorx.ErrAdminNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return "", errorx.ErrWrongPassword
	}

	return jwtx.GenerateToken(s.secret, admin.ID, admin.Username, s.tokenTTL)
}

// Logout 注销 token：拉黑到它自然过期为止
func (s *AuthService) Logout(ctx context.Context, token string) error {
	ttl := s.tokenTTL
	if claims, err := jwtx.ParseToken(s.secret, token); err == nil && claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	return s.adminModule.BlacklistToken(ctx, token, ttl)
}

// CurrentAdmin 按 token 载荷里的ID取当前管理员，未命中返回 nil, nil
func (s *AuthService) CurrentAdmin(ctx context.Context, adminID int64) (*etadmin.Admin, error) {
	return s.adminModule.GetAdmin(ctx, adminID)
}
