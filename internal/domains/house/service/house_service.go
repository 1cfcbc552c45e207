package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"cozyhomes-backend/internal/domains/house/model"
	"cozyhomes-backend/internal/domains/house/repository"
	"cozyhomes-backend/internal/shared/session"
)

type houseService struct {
	repo repository.Repository
}

func NewService(repo repository.Repository) ServiceInterface {
	return &houseService{repo: repo}
}

// Create stamps the owner from the session and persists the draft.
func (s *houseService) Create(ctx context.Context, sess session.Session, req model.DraftRequest) (*model.House, error) {
	if !sess.Authenticated() {
		return nil, model.ErrUnauthorized
	}

	house := &model.House{
		UserID:              sess.ActorID,
		Title:               req.Title,
		Description:         req.Description,
		Image:               req.Image,
		Country:             req.Country,
		County:              req.County,
		City:                req.City,
		LocationDescription: req.LocationDescription,
		Gym:                 req.Gym,
		Spa:                 req.Spa,
		Bar:                 req.Bar,
		Parking:             req.Parking,
		SwimmingPool:        req.SwimmingPool,
	}

	created, err := s.repo.Create(ctx, house)
	if err != nil {
		return nil, fmt.Errorf("create house: %w", err)
	}

	log.Info().
		Str("house_id", created.ID.String()).
		Str("owner_id", created.UserID.String()).
		Msg("house created")

	return created, nil
}

// Update applies a partial draft after the access check. The repository
// SET clause is built only from draft fields, so the owner column is
// unreachable regardless of payload content.
func (s *houseService) Update(ctx context.Context, sess session.Session, id uuid.UUID, req model.UpdateRequest) (*model.House, error) {
	if !sess.Authenticated() {
		return nil, model.ErrUnauthorized
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanEdit(existing, sess.ActorID) {
		return nil, model.ErrNotOwner
	}

	if req.IsEmpty() {
		return nil, model.ErrEmptyUpdate
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("update house %s: %w", id, err)
	}

	return updated, nil
}

func (s *houseService) GetDetail(ctx context.Context, sess session.Session, id uuid.UUID) (*model.HouseWithRooms, error) {
	if !sess.Authenticated() {
		return nil, model.ErrUnauthorized
	}

	detail, err := s.repo.GetWithRooms(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanView(&detail.House, sess.ActorID) {
		// Policy denial: the caller gets access-denied, never partial data.
		return nil, model.ErrNotOwner
	}

	return detail, nil
}

func (s *houseService) ListMine(ctx context.Context, sess session.Session) ([]model.House, error) {
	if !sess.Authenticated() {
		return nil, model.ErrUnauthorized
	}

	houses, err := s.repo.ListByOwner(ctx, sess.ActorID)
	if err != nil {
		return nil, fmt.Errorf("list houses for %s: %w", sess.ActorID, err)
	}
	return houses, nil
}
