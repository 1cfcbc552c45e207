package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"cozyhomes-backend/internal/domains/house/model"
)

func TestCanViewOwnerOnly(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	house := &model.House{ID: uuid.New(), UserID: owner}

	assert.True(t, CanView(house, owner))
	assert.False(t, CanView(house, other))
	assert.False(t, CanView(house, uuid.Nil))
}

func TestCanViewCreatePathOpenToAuthenticated(t *testing.T) {
	assert.True(t, CanView(nil, uuid.New()))
	assert.False(t, CanView(nil, uuid.Nil))
}

func TestCanEditMatchesCanView(t *testing.T) {
	owner := uuid.New()
	house := &model.House{ID: uuid.New(), UserID: owner}

	assert.Equal(t, CanView(house, owner), CanEdit(house, owner))
	assert.Equal(t, CanView(house, uuid.Nil), CanEdit(house, uuid.Nil))
}
