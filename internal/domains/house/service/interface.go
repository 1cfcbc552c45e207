package service

import (
	"context"

	"github.com/google/uuid"

	"cozyhomes-backend/internal/domains/house/model"
	"cozyhomes-backend/internal/shared/session"
)

// ServiceInterface is the persistence gateway for house listings.
// Every operation takes the caller's session as an explicit value.
type ServiceInterface interface {
	// Create persists a new listing. The owner is stamped from sess;
	// any owner value a client smuggles into the draft is ignored.
	Create(ctx context.Context, sess session.Session, req model.DraftRequest) (*model.House, error)

	// Update applies a partial draft to an existing listing.
	// Owner-only; the owner column itself is never writable.
	Update(ctx context.Context, sess session.Session, id uuid.UUID, req model.UpdateRequest) (*model.House, error)

	// GetDetail returns a listing with its rooms, owner-only.
	GetDetail(ctx context.Context, sess session.Session, id uuid.UUID) (*model.HouseWithRooms, error)

	// ListMine returns the caller's listings.
	ListMine(ctx context.Context, sess session.Session) ([]model.House, error)
}
