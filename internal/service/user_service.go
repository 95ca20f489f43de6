package service

import (
	"context"
	"time"

	"github.com/diasutsman/open-music-api/internal/domain"
	"github.com/diasutsman/open-music-api/internal/repository"
	"github.com/diasutsman/open-music-api/pkg/crypto"
)

// UserService 用户服务
type UserService struct {
	userRepo repository.UserRepository
	hasher   *crypto.PasswordHasher
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository, hasher *crypto.PasswordHasher) *UserService {
	return &UserService{userRepo: userRepo, hasher: hasher}
}

// AddUser 注册用户, 用户名唯一
func (s *UserService) AddUser(ctx context.Context, username, password, fullname string) (string, error) {
	if password == "" {
		return "", domain.ErrInvalidPassword
	}

	user := &domain.User{
		ID:        domain.NewID("user"),
		Username:  username,
		Fullname:  fullname,
		CreatedAt: time.Now(),
	}
	if err := user.Validate(); err != nil {
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// GetUserByID 获取用户
func (s *UserService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
