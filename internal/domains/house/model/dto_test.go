package model

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() DraftRequest {
	return DraftRequest{
		Title:               "Lakeside cabin",
		Description:         "Quiet cabin with a view of the lake",
		Image:               "http://localhost:9000/cozyhomes/houses/abc.jpg",
		Country:             "US",
		County:              "CA",
		LocationDescription: "Ten minutes from the waterfront",
	}
}

func TestDraftRequestValid(t *testing.T) {
	assert.NoError(t, validDraft().Validate())
}

func TestDraftRequestCityIsOptional(t *testing.T) {
	draft := validDraft()
	draft.City = ""
	assert.NoError(t, draft.Validate())
}

func TestDraftRequestFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DraftRequest)
		field  string
	}{
		{"title too short", func(d *DraftRequest) { d.Title = "ab" }, "title"},
		{"title missing", func(d *DraftRequest) { d.Title = "" }, "title"},
		{"description too short", func(d *DraftRequest) { d.Description = "short" }, "description"},
		{"image missing", func(d *DraftRequest) { d.Image = "" }, "image"},
		{"country missing", func(d *DraftRequest) { d.Country = "" }, "country"},
		{"county missing", func(d *DraftRequest) { d.County = "" }, "county"},
		{"location description too short", func(d *DraftRequest) { d.LocationDescription = "close by" }, "location_description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := draft.Validate()
			require.Error(t, err)

			errs, ok := err.(validation.Errors)
			require.True(t, ok)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestUpdateRequestSkipsAbsentFields(t *testing.T) {
	// An empty patch is structurally valid; emptiness is handled by
	// the service, not the validator.
	assert.NoError(t, UpdateRequest{}.Validate())
	assert.True(t, UpdateRequest{}.IsEmpty())
}

func TestUpdateRequestValidatesProvidedFields(t *testing.T) {
	short := "ab"
	err := UpdateRequest{Title: &short}.Validate()
	require.Error(t, err)

	errs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, errs, "title")
}

func TestApplyToNeverTouchesOwner(t *testing.T) {
	owner := uuid.New()
	house := &House{
		ID:     uuid.New(),
		UserID: owner,
		Title:  "Lakeside cabin",
		Gym:    true,
	}

	title := "Renamed cabin"
	city := "San Diego"
	gym := false
	patch := UpdateRequest{Title: &title, City: &city, Gym: &gym}
	patch.ApplyTo(house)

	assert.Equal(t, owner, house.UserID)
	assert.Equal(t, "Renamed cabin", house.Title)
	assert.Equal(t, "San Diego", house.City)
	assert.False(t, house.Gym)
}
