package service

import (
	"github.com/google/uuid"

	"cozyhomes-backend/internal/domains/house/model"
)

// Access guard: houses are owner-only. A denied result is a policy
// outcome surfaced to the caller, never an error.

// CanView reports whether actor may see the house.
// Unauthenticated actors (uuid.Nil) may never view.
func CanView(house *model.House, actorID uuid.UUID) bool {
	if actorID == uuid.Nil {
		return false
	}
	if house == nil {
		// Not-yet-created listing: any authenticated actor may open
		// the create form.
		return true
	}
	return house.UserID == actorID
}

// CanEdit reports whether actor may modify the house.
// Same policy as CanView: owner-only, create path open to any
// authenticated actor.
func CanEdit(house *model.House, actorID uuid.UUID) bool {
	return CanView(house, actorID)
}
