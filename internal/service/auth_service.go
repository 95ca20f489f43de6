package service

import (
	"context"
	"errors"

	"github.com/diasutsman/open-music-api/internal/domain"
	"github.com/diasutsman/open-music-api/internal/repository"
	"github.com/diasutsman/open-music-api/pkg/crypto"
	"github.com/diasutsman/open-music-api/pkg/jwt"
)

// TokenPair 登录签发的令牌对
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService 认证服务, 刷新令牌持久化, 登出即删除
type AuthService struct {
	userRepo repository.UserRepository
	authRepo repository.AuthRepository
	jwt      *jwt.Manager
	hasher   *crypto.PasswordHasher
}

// NewAuthService 创建认证服务
func NewAuthService(
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	jwtManager *jwt.Manager,
	hasher *crypto.PasswordHasher,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		authRepo: authRepo,
		jwt:      jwtManager,
		hasher:   hasher,
	}
}

// Login 用户名密码登录, 签发令牌对并持久化刷新令牌
// 用户不存在与密码错误统一返回凭证错误, 不泄露用户是否存在
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.authRepo.AddToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh 用有效的刷新令牌换新的访问令牌
// 令牌必须仍在存储中, 登出过的令牌即使签名有效也拒绝
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if err := s.authRepo.VerifyToken(ctx, refreshToken); err != nil {
		return "", err
	}

	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	return s.jwt.GenerateAccessToken(claims.UserID)
}

// Logout 删除刷新令牌使其失效
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.authRepo.VerifyToken(ctx, refreshToken); err != nil {
		return err
	}
	return s.authRepo.DeleteToken(ctx, refreshToken)
}
