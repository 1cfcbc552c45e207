package form

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"cozyhomes-backend/internal/domains/location"
)

// Machine reduces form events against the static location resolver.
// Reduce is pure: it returns a new Form and never mutates its input,
// which makes every transition testable without a UI harness.
type Machine struct {
	resolver *location.Resolver
}

func NewMachine(resolver *location.Resolver) Machine {
	return Machine{resolver: resolver}
}

// Reduce applies one event. Events that are not legal in the current
// state are ignored and the form is returned unchanged; the submit
// guard in particular makes a second submit while one is pending a
// strict no-op.
func (m Machine) Reduce(f Form, ev Event) Form {
	switch e := ev.(type) {
	case FieldChanged:
		return m.reduceFieldChanged(f, e)
	case AmenityToggled:
		return reduceAmenityToggled(f, e)

	case ImageUploadStarted:
		if f.Image != ImageEmpty {
			return f
		}
		f.Image = ImageUploading
		return f

	case ImageUploadCompleted:
		if f.Image != ImageUploading {
			return f
		}
		f.Image = ImagePresent
		f.Draft.Image = e.URL
		f.ErrorMsg = ""
		return f

	case ImageUploadFailed:
		if f.Image != ImageUploading {
			return f
		}
		f.Image = ImageEmpty
		f.ErrorMsg = e.Reason
		return f

	case ImageDeleteRequested:
		if f.Image != ImagePresent {
			return f
		}
		f.Image = ImageDeleting
		return f

	case ImageDeleteCompleted:
		if f.Image != ImageDeleting {
			return f
		}
		f.Image = ImageEmpty
		f.Draft.Image = ""
		f.ErrorMsg = ""
		return f

	case ImageDeleteFailed:
		if f.Image != ImageDeleting {
			return f
		}
		// The hosted file is still there; keep the field as-is.
		f.Image = ImagePresent
		f.ErrorMsg = e.Reason
		return f

	case SubmitRequested:
		return reduceSubmitRequested(f)

	case SubmitSucceeded:
		if f.Phase != PhaseSubmitting {
			return f
		}
		f.Phase = PhaseSubmitted
		f.HouseID = e.HouseID
		f.RedirectTo = "/house/" + e.HouseID.String()
		return f

	case SubmitFailed:
		if f.Phase != PhaseSubmitting {
			return f
		}
		f.Phase = PhaseEditing
		f.ErrorMsg = e.Reason
		return f
	}

	return f
}

// reduceFieldChanged applies a text edit and the location cascade:
// a country change resets county and city unconditionally, a county
// change resets city. Option lists are regenerated whole.
func (m Machine) reduceFieldChanged(f Form, e FieldChanged) Form {
	if f.Phase != PhaseEditing {
		return f
	}

	switch e.Name {
	case FieldTitle:
		f.Draft.Title = e.Value
	case FieldDescription:
		f.Draft.Description = e.Value
	case FieldLocationDescription:
		f.Draft.LocationDescription = e.Value
	case FieldCity:
		f.Draft.City = e.Value

	case FieldCountry:
		f.Draft.Country = e.Value
		// Reset dependents even when the new country has a state with
		// the same code as the previous selection.
		f.Draft.County = ""
		f.Draft.City = ""
		f.StateOptions = m.resolver.StatesForCountry(e.Value)
		f.CityOptions = []location.City{}

	case FieldCounty:
		f.Draft.County = e.Value
		f.Draft.City = ""
		f.CityOptions = m.resolver.CitiesForState(f.Draft.Country, e.Value)

	default:
		return f
	}

	return f
}

func reduceAmenityToggled(f Form, e AmenityToggled) Form {
	if f.Phase != PhaseEditing {
		return f
	}

	switch e.Name {
	case AmenityGym:
		f.Draft.Gym = e.Value
	case AmenitySpa:
		f.Draft.Spa = e.Value
	case AmenityBar:
		f.Draft.Bar = e.Value
	case AmenityParking:
		f.Draft.Parking = e.Value
	case AmenitySwimmingPool:
		f.Draft.SwimmingPool = e.Value
	}

	return f
}

// reduceSubmitRequested validates the draft and, when clean, moves the
// form to PhaseSubmitting. No gateway call was made yet when validation
// fails; the caller issues the create-or-update only after observing
// the Submitting phase.
func reduceSubmitRequested(f Form) Form {
	if f.Phase != PhaseEditing {
		// Already submitting or submitted: strict no-op.
		return f
	}
	if f.Image == ImageUploading || f.Image == ImageDeleting {
		f.ErrorMsg = "image transfer still in progress"
		return f
	}

	if err := f.Draft.Validate(); err != nil {
		f.FieldErrors = fieldErrors(err)
		return f
	}

	f.Phase = PhaseSubmitting
	f.FieldErrors = map[string]string{}
	f.ErrorMsg = ""
	return f
}

// fieldErrors flattens ozzo's error map into field -> message.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	if errs, ok := err.(validation.Errors); ok {
		for field, ferr := range errs {
			out[field] = ferr.Error()
		}
		return out
	}
	out["_"] = err.Error()
	return out
}
