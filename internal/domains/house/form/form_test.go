package form

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cozyhomes-backend/internal/domains/house/model"
	"cozyhomes-backend/internal/domains/location"
)

func newMachine(t *testing.T) Machine {
	t.Helper()
	resolver, err := location.NewResolver()
	require.NoError(t, err)
	return NewMachine(resolver)
}

func validDraft() model.DraftRequest {
	return model.DraftRequest{
		Title:               "Lakeside cabin",
		Description:         "Quiet cabin with a view of the lake",
		Image:               "http://files.example.com/bucket/houses/abc123.jpg",
		Country:             "US",
		County:              "CA",
		City:                "Los Angeles",
		LocationDescription: "Ten minutes from the waterfront",
	}
}

func editingForm(t *testing.T, m Machine) Form {
	t.Helper()
	f := New(m.resolver, nil)
	f.Draft = validDraft()
	f.Image = ImagePresent
	f.StateOptions = m.resolver.StatesForCountry("US")
	f.CityOptions = m.resolver.CitiesForState("US", "CA")
	return f
}

func TestReduceCountryChangeResetsCountyAndCity(t *testing.T) {
	m := newMachine(t)
	f := editingForm(t, m)

	got := m.Reduce(f, FieldChanged{Name: FieldCountry, Value: "GB"})

	assert.Equal(t, "GB", got.Draft.Country)
	assert.Empty(t, got.Draft.County)
	assert.Empty(t, got.Draft.City)
	assert.Empty(t, got.CityOptions)
	assert.Equal(t, m.resolver.StatesForCountry("GB"), got.StateOptions)
	assert.NotEmpty(t, got.StateOptions)

	// Input untouched.
	assert.Equal(t, "US", f.Draft.Country)
	assert.Equal(t, "CA", f.Draft.County)
}

func TestReduceCountryChangeResetsEvenWhenStateCodeOverlaps(t *testing.T) {
	m := newMachine(t)
	f := editingForm(t, m)

	// Canada also has a state list; switching countries must not keep
	// the old "CA" county selection even if a code collision existed.
	got := m.Reduce(f, FieldChanged{Name: FieldCountry, Value: "CA"})

	assert.Equal(t, "CA", got.Draft.Country)
	assert.Empty(t, got.Draft.County)
	assert.Empty(t, got.Draft.City)
}

func TestReduceCountyChangeResetsCity(t *testing.T) {
	m := newMachine(t)
	f := editingForm(t, m)

	got := m.Reduce(f, FieldChanged{Name: FieldCounty, Value: "NY"})

	assert.Equal(t, "NY", got.Draft.County)
	assert.Empty(t, got.Draft.City)
	assert.Equal(t, m.resolver.CitiesForState("US", "NY"), got.CityOptions)
	// Country and its option list survive.
	assert.Equal(t, "US", got.Draft.Country)
	assert.Equal(t, f.StateOptions, got.StateOptions)
}

func TestReduceFieldChangeIgnoredWhileSubmitting(t *testing.T) {
	m := newMachine(t)
	f := editingForm(t, m)
	f.Phase = PhaseSubmitting

	got := m.Reduce(f, FieldChanged{Name: FieldTitle, Value: "New title"})

	assert.Equal(t, f, got)
}

func TestReduceSubmitMovesToSubmitting(t *testing.T) {
	m := newMachine(t)
	f := editingForm(t, m)

	got := m.Reduce(f, SubmitRequested{})

	assert.Equal(t, PhaseSubmitting, got.Phase)
	assert.Empty(t, got.FieldErrors)
	assert.Empty(t, got.ErrorMsg)
}

func TestReduceSubmitIsNoOpWhileSubmitting(t *testing.T) {
	m := newMachine(t)
	f := editingForm(t, m)

	first := m.Reduce(f, SubmitRequested{})
	require.Equal(t, PhaseSubmitting, first.Phase)

	second := m.Reduce(first, SubmitRequested{})
	assert.Equal(t, first, second)
}

func TestReduceSubmitBlockedDuringImageTransfer(t *testing.T) {
	m := newMachine(t)

	for _, state := range []ImageState{ImageUploading, ImageDeleting} {
		f := editingForm(t, m)
		f.Image = state

		got := m.Reduce(f, SubmitRequested{})

		assert.Equal(t, PhaseEditing, got.Phase, "state %s", state)
		assert.NotEmpty(t, got.ErrorMsg, "state %s", state)
	}
}

func TestReduceSubmitValidationFailureStaysEditing(t *testing.T) {
	m := newMachine(t)
	f := editingForm(t, m)
	f.Draft.Title = "ab" // below minimum length
	f.Draft.LocationDescription = ""

	got := m.Reduce(f, SubmitRequested{})

	assert.Equal(t, PhaseEditing, got.Phase)
	assert.Contains(t, got.FieldErrors, "title")
	assert.Contains(t, got.FieldErrors, "location_description")
}

func TestReduceSubmitSucceededRedirects(t *testing.T) {
	m := newMachine(t)
	f := editingForm(t, m)
	f = m.Reduce(f, SubmitRequested{})
	require.Equal(t, PhaseSubmitting, f.Phase)

	id := uuid.New()
	got := m.Reduce(f, SubmitSucceeded{HouseID: id})

	assert.Equal(t, PhaseSubmitted, got.Phase)
	assert.Equal(t, id, got.HouseID)
	assert.Equal(t, "/house/"+id.String(), got.RedirectTo)
}

func TestReduceSubmitFailedReturnsToEditing(t *testing.T) {
	m := newMachine(t)
	f := editingForm(t, m)
	f = m.Reduce(f, SubmitRequested{})

	got := m.Reduce(f, SubmitFailed{Reason: "could not save house"})

	assert.Equal(t, PhaseEditing, got.Phase)
	assert.Equal(t, "could not save house", got.ErrorMsg)
}

func TestReduceImageUploadLifecycle(t *testing.T) {
	m := newMachine(t)
	f := New(m.resolver, nil)
	require.Equal(t, ImageEmpty, f.Image)

	f = m.Reduce(f, ImageUploadStarted{})
	assert.Equal(t, ImageUploading, f.Image)

	url := "http://files.example.com/bucket/houses/xyz987.jpg"
	f = m.Reduce(f, ImageUploadCompleted{URL: url})
	assert.Equal(t, ImagePresent, f.Image)
	assert.Equal(t, url, f.Draft.Image)
}

func TestReduceImageUploadFailureClearsState(t *testing.T) {
	m := newMachine(t)
	f := New(m.resolver, nil)

	f = m.Reduce(f, ImageUploadStarted{})
	f = m.Reduce(f, ImageUploadFailed{Reason: "upload rejected"})

	assert.Equal(t, ImageEmpty, f.Image)
	assert.Empty(t, f.Draft.Image)
	assert.Equal(t, "upload rejected", f.ErrorMsg)
}

func TestReduceImageDeleteClearsField(t *testing.T) {
	m := newMachine(t)
	f := editingForm(t, m)
	f.Draft.Image = "http://files.example.com/bucket/houses/xyz987.jpg"

	f = m.Reduce(f, ImageDeleteRequested{})
	assert.Equal(t, ImageDeleting, f.Image)
	// URL still set while the remote delete is in flight.
	assert.NotEmpty(t, f.Draft.Image)

	f = m.Reduce(f, ImageDeleteCompleted{})
	assert.Equal(t, ImageEmpty, f.Image)
	assert.Empty(t, f.Draft.Image)
}

func TestReduceImageDeleteFailureKeepsImage(t *testing.T) {
	m := newMachine(t)
	f := editingForm(t, m)

	f = m.Reduce(f, ImageDeleteRequested{})
	got := m.Reduce(f, ImageDeleteFailed{Reason: "storage unavailable"})

	assert.Equal(t, ImagePresent, got.Image)
	assert.Equal(t, f.Draft.Image, got.Draft.Image)
	assert.Equal(t, "storage unavailable", got.ErrorMsg)
}

func TestReduceIgnoresOutOfOrderImageEvents(t *testing.T) {
	m := newMachine(t)
	f := New(m.resolver, nil)

	assert.Equal(t, f, m.Reduce(f, ImageUploadCompleted{URL: "x"}))
	assert.Equal(t, f, m.Reduce(f, ImageDeleteRequested{}))
	assert.Equal(t, f, m.Reduce(f, ImageDeleteCompleted{}))
}

func TestNewFormFromExistingHouse(t *testing.T) {
	m := newMachine(t)
	existing := &model.HouseWithRooms{
		House: model.House{
			ID:                  uuid.New(),
			Title:               "Old farmhouse",
			Description:         "Stone farmhouse outside town",
			Image:               "http://files.example.com/bucket/houses/old.jpg",
			Country:             "US",
			County:              "CA",
			City:                "San Diego",
			LocationDescription: "At the end of the valley road",
		},
	}

	f := New(m.resolver, existing)

	assert.True(t, f.IsUpdate())
	assert.Equal(t, ImagePresent, f.Image)
	assert.Equal(t, "Old farmhouse", f.Draft.Title)
	assert.NotEmpty(t, f.StateOptions)
	assert.NotEmpty(t, f.CityOptions)
}
