package repository

import (
	"context"

	"github.com/google/uuid"

	"cozyhomes-backend/internal/domains/house/model"
)

// Repository is the data-access contract for houses.
// Implementations must never write the owner column on update.
type Repository interface {
	// Create inserts a new house with a generated id and returns it.
	Create(ctx context.Context, house *model.House) (*model.House, error)

	// GetByID returns a house or model.ErrHouseNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.House, error)

	// GetWithRooms returns a house together with its rooms.
	GetWithRooms(ctx context.Context, id uuid.UUID) (*model.HouseWithRooms, error)

	// Update overwrites only the fields present in req.
	// Returns model.ErrHouseNotFound when the row is absent.
	Update(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.House, error)

	// ListByOwner returns every house owned by the given actor.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.House, error)

	// ImageKeyInUse reports whether any house image URL ends in the
	// given object key. Used by the orphan sweep.
	ImageKeyInUse(ctx context.Context, key string) (bool, error)
}
