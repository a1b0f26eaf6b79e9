package svauth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ixp/apiserver/internal/app/domains/modules/mdadmin"
	"ixp/apiserver/internal/app/domains/repo/repotest"
	"ixp/apiserver/internal/app/pkg/errorx"
	"ixp/apiserver/internal/app/pkg/jwtx"
)

const testSecret = "test-secret"

func newTestAuthService() (*AuthService, *repotest.AdminRepo, *repotest.TokenStore) {
	adminRepo := &repotest.AdminRepo{}
	tokenStore := repotest.NewTokenStore()
	module := mdadmin.NewAdminModule(adminRepo, tokenStore)
	return NewAuthService(module, testSecret, 24*time.Hour), adminRepo, tokenStore
}

func TestSignupAndLogin(t *testing.T) {
	svc, adminRepo, _ := newTestAuthService()
	ctx := context.Background()

	admin, err := svc.Signup(ctx, "Alice Andersson", "alice", "s3cret", "alice@example.com", "")
	require.NoError(t, err)
	require.Len(t, adminRepo.Admins, 1)
	assert.Positive(t, admin.ID)
	// 落库的是哈希，不是明文
	assert.NotEqual(t, "s3cret", admin.Password)

	token, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	claims, err := jwtx.ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	adminID, err := claims.ParseAdminID()
	require.NoError(t, err)
	assert.Equal(t, admin.ID, adminID)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Alice", "alice", "s3cret", "alice@example.com", "")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Alice Clone", "alice2", "s3cret", "alice@example.com", "")
	assert.ErrorIs(t, err, errorx.ErrEmailRegistered)
}

func TestSignupRejectsEmptyPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Signup(context.Background(), "Alice", "alice", "", "alice@example.com", "")
	assert.ErrorIs(t, err, errorx.ErrPasswordRequired)
}

func TestLoginByEmailFallback(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Alice", "alice", "s3cret", "alice@example.com", "")
	require.NoError(t, err)

	// 登录框里填邮箱也能登录
	token, err := svc.Login(ctx, "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginErrors(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Login(ctx, "ghost", "whatever")
	assert.ErrorIs(t, err, errorx.ErrAdminNotFound)

	_, err = svc.Signup(ctx, "Alice", "alice", "s3cret", "alice@example.com", "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, errorx.ErrWrongPassword)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	svc, _, tokenStore := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Alice", "alice", "s3cret", "alice@example.com", "")
	require.NoError(t, err)
	token, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))

	blacklisted, err := tokenStore.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestCurrentAdmin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	admin, err := svc.Signup(ctx, "Alice", "alice", "s3cret", "alice@example.com", "")
	require.NoError(t, err)

	got, err := svc.CurrentAdmin(ctx, admin.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)

	missing, err := svc.CurrentAdmin(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
