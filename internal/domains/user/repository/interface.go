package repository

import (
	"context"

	"github.com/google/uuid"

	"cozyhomes-backend/internal/domains/user/model"
)

type Repository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}
