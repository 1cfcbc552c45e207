package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cozyhomes-backend/internal/domains/user/model"
	"cozyhomes-backend/pkg/jwt"
)

// memoryRepo is an in-memory user store for service tests.
type memoryRepo struct {
	byEmail map[string]*model.User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byEmail: map[string]*model.User{}}
}

func (r *memoryRepo) Create(ctx context.Context, user *model.User) error {
	user.ID = uuid.New()
	r.byEmail[user.Email] = user
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *memoryRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, model.ErrUserNotFound
}

func newTestService() ServiceInterface {
	return NewService(newMemoryRepo(), jwt.NewManager("test-secret", 60))
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	svc := newTestService()

	result, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "owner@example.com",
		Name:     "Owner",
		Password: "long-enough-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEqual(t, "long-enough-password", result.User.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(result.User.PasswordHash), []byte("long-enough-password")))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newTestService()

	req := model.RegisterRequest{
		Email:    "owner@example.com",
		Name:     "Owner",
		Password: "long-enough-password",
	}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestLoginWithValidCredentials(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "owner@example.com",
		Name:     "Owner",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "owner@example.com",
		Password: "long-enough-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "owner@example.com",
		Name:     "Owner",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), model.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginUnknownEmailLooksLikeBadPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})

	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}
