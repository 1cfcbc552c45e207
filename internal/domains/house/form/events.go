package form

import "github.com/google/uuid"

// Field names accepted by FieldChanged.
const (
	FieldTitle               = "title"
	FieldDescription         = "description"
	FieldCountry             = "country"
	FieldCounty              = "county"
	FieldCity                = "city"
	FieldLocationDescription = "location_description"
)

// Amenity names accepted by AmenityToggled.
const (
	AmenityGym          = "gym"
	AmenitySpa          = "spa"
	AmenityBar          = "bar"
	AmenityParking      = "parking"
	AmenitySwimmingPool = "swimming_pool"
)

// Event is one input to the reducer.
type Event interface {
	isFormEvent()
}

// FieldChanged carries an edit of a named text field.
type FieldChanged struct {
	Name  string
	Value string
}

// AmenityToggled flips one amenity flag.
type AmenityToggled struct {
	Name  string
	Value bool
}

// ImageUploadStarted marks the upload widget going busy.
type ImageUploadStarted struct{}

// ImageUploadCompleted carries the hosted URL of the uploaded file.
type ImageUploadCompleted struct {
	URL string
}

// ImageUploadFailed surfaces the upload error. No retry.
type ImageUploadFailed struct {
	Reason string
}

// ImageDeleteRequested marks the start of removing the current image.
type ImageDeleteRequested struct{}

// ImageDeleteCompleted confirms the hosted file is gone.
type ImageDeleteCompleted struct{}

// ImageDeleteFailed surfaces the delete error; the image stays.
type ImageDeleteFailed struct {
	Reason string
}

// SubmitRequested asks to validate and persist the draft.
type SubmitRequested struct{}

// SubmitSucceeded carries the id of the created or updated listing.
type SubmitSucceeded struct {
	HouseID uuid.UUID
}

// SubmitFailed reverts the form to editing with a generic error.
type SubmitFailed struct {
	Reason string
}

func (FieldChanged) isFormEvent()         {}
func (AmenityToggled) isFormEvent()       {}
func (ImageUploadStarted) isFormEvent()   {}
func (ImageUploadCompleted) isFormEvent() {}
func (ImageUploadFailed) isFormEvent()    {}
func (ImageDeleteRequested) isFormEvent() {}
func (ImageDeleteCompleted) isFormEvent() {}
func (ImageDeleteFailed) isFormEvent()    {}
func (SubmitRequested) isFormEvent()      {}
func (SubmitSucceeded) isFormEvent()      {}
func (SubmitFailed) isFormEvent()         {}
