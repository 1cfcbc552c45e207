package form

import (
	"github.com/google/uuid"

	"cozyhomes-backend/internal/domains/house/model"
	"cozyhomes-backend/internal/domains/location"
)

// Phase is the submit lifecycle of the listing form.
type Phase int

const (
	PhaseEditing Phase = iota
	PhaseSubmitting
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSubmitted:
		return "submitted"
	}
	return "unknown"
}

// ImageState is the independent sub-state of the image field.
type ImageState int

const (
	ImageEmpty ImageState = iota
	ImageUploading
	ImagePresent
	ImageDeleting
)

func (s ImageState) String() string {
	switch s {
	case ImageEmpty:
		return "empty"
	case ImageUploading:
		return "uploading"
	case ImagePresent:
		return "present"
	case ImageDeleting:
		return "deleting"
	}
	return "unknown"
}

// Form is the complete draft state of one editing session. It is a
// value: Reduce returns a new Form and never mutates its input, so a
// session's history is just a sequence of values.
type Form struct {
	Phase Phase
	Image ImageState

	// HouseID is Nil on the create path, set on the update path.
	HouseID uuid.UUID

	Draft model.DraftRequest

	// Option lists derived from the current country/county selection.
	// Regenerated whole on every cascade, never merged.
	StateOptions []location.State
	CityOptions  []location.City

	// FieldErrors holds per-field validation messages from the last
	// rejected submit.
	FieldErrors map[string]string

	// ErrorMsg is the single generic user-visible error from the last
	// failed gateway call.
	ErrorMsg string

	// RedirectTo is set once the form reaches PhaseSubmitted.
	RedirectTo string
}

// New builds the initial form for a create (existing == nil) or an
// update session. On update the option lists are populated so the
// county/city dropdowns render their current values.
func New(resolver *location.Resolver, existing *model.HouseWithRooms) Form {
	f := Form{
		Phase:        PhaseEditing,
		Image:        ImageEmpty,
		StateOptions: []location.State{},
		CityOptions:  []location.City{},
		FieldErrors:  map[string]string{},
	}

	if existing == nil {
		return f
	}

	f.HouseID = existing.ID
	f.Draft = model.DraftRequest{
		Title:               existing.Title,
		Description:         existing.Description,
		Image:               existing.Image,
		Country:             existing.Country,
		County:              existing.County,
		City:                existing.City,
		LocationDescription: existing.LocationDescription,
		Gym:                 existing.Gym,
		Spa:                 existing.Spa,
		Bar:                 existing.Bar,
		Parking:             existing.Parking,
		SwimmingPool:        existing.SwimmingPool,
	}
	if f.Draft.Image != "" {
		f.Image = ImagePresent
	}
	f.StateOptions = resolver.StatesForCountry(existing.Country)
	f.CityOptions = resolver.CitiesForState(existing.Country, existing.County)

	return f
}

// IsUpdate reports whether the session edits an existing listing.
func (f Form) IsUpdate() bool {
	return f.HouseID != uuid.Nil
}

// CanSubmit reports whether a submit would currently be accepted:
// the form must be editing and the image field stable. Submitting
// while an upload or delete is in flight is rejected so the persisted
// image URL can never change underneath the write.
func (f Form) CanSubmit() bool {
	return f.Phase == PhaseEditing && f.Image != ImageUploading && f.Image != ImageDeleting
}
