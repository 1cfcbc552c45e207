package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cozyhomes-backend/internal/domains/house/model"
	"cozyhomes-backend/internal/shared/session"
)

// fakeRepo implements repository.Repository with per-call hooks.
type fakeRepo struct {
	createFn   func(ctx context.Context, house *model.House) (*model.House, error)
	getByIDFn  func(ctx context.Context, id uuid.UUID) (*model.House, error)
	getRoomsFn func(ctx context.Context, id uuid.UUID) (*model.HouseWithRooms, error)
	updateFn   func(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.House, error)
	listFn     func(ctx context.Context, ownerID uuid.UUID) ([]model.House, error)
	keyInUseFn func(ctx context.Context, key string) (bool, error)
}

func (f *fakeRepo) Create(ctx context.Context, house *model.House) (*model.House, error) {
	return f.createFn(ctx, house)
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.House, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepo) GetWithRooms(ctx context.Context, id uuid.UUID) (*model.HouseWithRooms, error) {
	return f.getRoomsFn(ctx, id)
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.House, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.House, error) {
	return f.listFn(ctx, ownerID)
}

func (f *fakeRepo) ImageKeyInUse(ctx context.Context, key string) (bool, error) {
	return f.keyInUseFn(ctx, key)
}

func sessionFor(id uuid.UUID) session.Session {
	return session.Session{ActorID: id, Email: "owner@example.com"}
}

func draft() model.DraftRequest {
	return model.DraftRequest{
		Title:               "Lakeside cabin",
		Description:         "Quiet cabin with a view of the lake",
		Image:               "http://localhost:9000/cozyhomes/houses/abc.jpg",
		Country:             "US",
		County:              "CA",
		LocationDescription: "Ten minutes from the waterfront",
	}
}

func TestCreateStampsOwnerFromSession(t *testing.T) {
	owner := uuid.New()

	var captured *model.House
	repo := &fakeRepo{
		createFn: func(ctx context.Context, house *model.House) (*model.House, error) {
			captured = house
			house.ID = uuid.New()
			return house, nil
		},
	}

	svc := NewService(repo)
	created, err := svc.Create(context.Background(), sessionFor(owner), draft())

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, owner, captured.UserID)
	assert.Equal(t, owner, created.UserID)
}

func TestCreateRejectsAnonymousSession(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Create(context.Background(), session.Anonymous, draft())

	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestUpdateDeniedForNonOwner(t *testing.T) {
	owner := uuid.New()
	intruder := uuid.New()
	houseID := uuid.New()

	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.House, error) {
			return &model.House{ID: houseID, UserID: owner}, nil
		},
		updateFn: func(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.House, error) {
			t.Fatal("update must not reach the repository on a policy denial")
			return nil, nil
		},
	}

	svc := NewService(repo)
	title := "New title"
	_, err := svc.Update(context.Background(), sessionFor(intruder), houseID, model.UpdateRequest{Title: &title})

	assert.ErrorIs(t, err, model.ErrNotOwner)
}

func TestUpdateRejectsEmptyDraft(t *testing.T) {
	owner := uuid.New()
	houseID := uuid.New()

	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.House, error) {
			return &model.House{ID: houseID, UserID: owner}, nil
		},
	}

	svc := NewService(repo)
	_, err := svc.Update(context.Background(), sessionFor(owner), houseID, model.UpdateRequest{})

	assert.ErrorIs(t, err, model.ErrEmptyUpdate)
}

func TestUpdateByOwnerSucceeds(t *testing.T) {
	owner := uuid.New()
	houseID := uuid.New()
	title := "Renamed cabin"

	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.House, error) {
			return &model.House{ID: houseID, UserID: owner, Title: "Lakeside cabin"}, nil
		},
		updateFn: func(ctx context.Context, id uuid.UUID, req model.UpdateRequest) (*model.House, error) {
			require.NotNil(t, req.Title)
			return &model.House{ID: houseID, UserID: owner, Title: *req.Title}, nil
		},
	}

	svc := NewService(repo)
	updated, err := svc.Update(context.Background(), sessionFor(owner), houseID, model.UpdateRequest{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, owner, updated.UserID)
}

func TestUpdateUnknownHouse(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.House, error) {
			return nil, model.ErrHouseNotFound
		},
	}

	svc := NewService(repo)
	title := "x"
	_, err := svc.Update(context.Background(), sessionFor(uuid.New()), uuid.New(), model.UpdateRequest{Title: &title})

	assert.ErrorIs(t, err, model.ErrHouseNotFound)
}

func TestGetDetailDeniedForNonOwner(t *testing.T) {
	owner := uuid.New()
	houseID := uuid.New()

	repo := &fakeRepo{
		getRoomsFn: func(ctx context.Context, id uuid.UUID) (*model.HouseWithRooms, error) {
			return &model.HouseWithRooms{House: model.House{ID: houseID, UserID: owner}}, nil
		},
	}

	svc := NewService(repo)
	detail, err := svc.GetDetail(context.Background(), sessionFor(uuid.New()), houseID)

	assert.ErrorIs(t, err, model.ErrNotOwner)
	// Denial returns no partial data.
	assert.Nil(t, detail)
}

func TestGetDetailForOwner(t *testing.T) {
	owner := uuid.New()
	houseID := uuid.New()

	repo := &fakeRepo{
		getRoomsFn: func(ctx context.Context, id uuid.UUID) (*model.HouseWithRooms, error) {
			return &model.HouseWithRooms{House: model.House{ID: houseID, UserID: owner}}, nil
		},
	}

	svc := NewService(repo)
	detail, err := svc.GetDetail(context.Background(), sessionFor(owner), houseID)

	require.NoError(t, err)
	assert.Equal(t, houseID, detail.ID)
}

func TestListMineScopedToSession(t *testing.T) {
	owner := uuid.New()

	repo := &fakeRepo{
		listFn: func(ctx context.Context, ownerID uuid.UUID) ([]model.House, error) {
			assert.Equal(t, owner, ownerID)
			return []model.House{{UserID: ownerID}}, nil
		},
	}

	svc := NewService(repo)
	houses, err := svc.ListMine(context.Background(), sessionFor(owner))

	require.NoError(t, err)
	require.Len(t, houses, 1)
}
