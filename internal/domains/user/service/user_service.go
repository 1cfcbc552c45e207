package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"cozyhomes-backend/internal/domains/user/model"
	"cozyhomes-backend/internal/domains/user/repository"
	"cozyhomes-backend/pkg/jwt"
)

type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResult, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	repo       repository.Repository
	jwtManager *jwt.Manager
}

func NewService(repo repository.Repository, jwtManager *jwt.Manager) ServiceInterface {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResult, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, model.ErrEmailTaken
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Same error as a bad password so the response does not
			// reveal which accounts exist.
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) issueToken(user *model.User) (*model.AuthResult, error) {
	token, err := s.jwtManager.GenerateAccessToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &model.AuthResult{
		User:        user,
		AccessToken: token,
	}, nil
}
