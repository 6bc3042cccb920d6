package service

import (
	"context"
	"errors"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/subaru7958/sports-team-manager/config"
	"github.com/subaru7958/sports-team-manager/internal/dto"
	"github.com/subaru7958/sports-team-manager/internal/model"
	"github.com/subaru7958/sports-team-manager/internal/repository"
	"github.com/subaru7958/sports-team-manager/pkg/jwt"
)

func setupTestAuthService(t *testing.T) (AuthService, *mockTeamRepo) {
	t.Helper()

	teamR := newMockTeamRepo()
	repo := &repository.Repository{
		Team:     teamR,
		Season:   newMockSeasonRepo(),
		Group:    newMockGroupRepo(),
		Facility: newMockFacilityRepo(),
		Event:    newMockEventRepo(),
	}

	authCfg := &config.AuthConfig{
		JWTSecret:       "test-secret-key-0123456789",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	jwtMgr := jwt.NewManager(authCfg)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}
	teamR.teams["team-1"] = &model.Team{
		TeamID:       "team-1",
		Name:         "测试俱乐部",
		UserID:       "admin@club.example",
		PasswordHash: string(hash),
		PrimaryColor: "#123456",
	}

	// Redis 为 nil：黑名单降级路径
	return NewAuthService(authCfg, repo, jwtMgr, nil, zap.NewNop()), teamR
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@club.example",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("应返回 Token 对")
	}
	if result.Team.ID != "team-1" {
		t.Errorf("期望Team.ID=team-1，实际=%s", result.Team.ID)
	}
	if result.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("期望ExpiresIn=900，实际=%d", result.ExpiresIn)
	}
}

func TestAuthService_Login_EmailCaseInsensitive(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "Admin@Club.Example",
		Password: "password123",
	})
	if err != nil {
		t.Errorf("邮箱大小写不应影响登录: %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@club.example",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	// 账号不存在与密码错误返回同一错误，不泄露账号信息
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ghost@club.example",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Logout_NilRedisDegrades(t *testing.T) {
	svc, _ := setupTestAuthService(t)

	claims := &jwt.Claims{TeamID: "team-1"}
	claims.ID = "jti-1"
	claims.ExpiresAt = jwtv5.NewNumericDate(time.Now().Add(10 * time.Minute))

	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Errorf("Redis 未配置时登出应静默成功: %v", err)
	}
}
