package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DraftRequest is the full listing draft submitted on the create path.
// Owner identity is never part of the draft; it is stamped from the
// session server-side.
type DraftRequest struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	Image               string `json:"image"`
	Country             string `json:"country"`
	County              string `json:"county"`
	City                string `json:"city,omitempty"`
	LocationDescription string `json:"location_description"`
	Gym                 bool   `json:"gym"`
	Spa                 bool   `json:"spa"`
	Bar                 bool   `json:"bar"`
	Parking             bool   `json:"parking"`
	SwimmingPool        bool   `json:"swimming_pool"`
}

func (r DraftRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(3, 255).Error("title must be at least 3 characters long"),
		),
		validation.Field(&r.Description,
			validation.Required.Error("description is required"),
			validation.Length(10, 0).Error("description must be at least 10 characters long"),
		),
		validation.Field(&r.Image,
			validation.Required.Error("image is required"),
		),
		validation.Field(&r.Country,
			validation.Required.Error("country is required"),
		),
		validation.Field(&r.County,
			validation.Required.Error("county is required"),
		),
		validation.Field(&r.LocationDescription,
			validation.Required.Error("location description is required"),
			validation.Length(10, 0).Error("location description must be at least 10 characters long"),
		),
	)
}

// UpdateRequest carries a partial draft for PATCH: only non-nil fields
// are written. There is deliberately no owner field.
type UpdateRequest struct {
	Title               *string `json:"title,omitempty"`
	Description         *string `json:"description,omitempty"`
	Image               *string `json:"image,omitempty"`
	Country             *string `json:"country,omitempty"`
	County              *string `json:"county,omitempty"`
	City                *string `json:"city,omitempty"`
	LocationDescription *string `json:"location_description,omitempty"`
	Gym                 *bool   `json:"gym,omitempty"`
	Spa                 *bool   `json:"spa,omitempty"`
	Bar                 *bool   `json:"bar,omitempty"`
	Parking             *bool   `json:"parking,omitempty"`
	SwimmingPool        *bool   `json:"swimming_pool,omitempty"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil,
				validation.Required.Error("title is required"),
				validation.Length(3, 255).Error("title must be at least 3 characters long"),
			),
		),
		validation.Field(&r.Description,
			validation.When(r.Description != nil,
				validation.Required.Error("description is required"),
				validation.Length(10, 0).Error("description must be at least 10 characters long"),
			),
		),
		validation.Field(&r.Image,
			validation.When(r.Image != nil,
				validation.Required.Error("image is required"),
			),
		),
		validation.Field(&r.Country,
			validation.When(r.Country != nil,
				validation.Required.Error("country is required"),
			),
		),
		validation.Field(&r.County,
			validation.When(r.County != nil,
				validation.Required.Error("county is required"),
			),
		),
		validation.Field(&r.LocationDescription,
			validation.When(r.LocationDescription != nil,
				validation.Required.Error("location description is required"),
				validation.Length(10, 0).Error("location description must be at least 10 characters long"),
			),
		),
	)
}

// IsEmpty reports whether the patch carries no fields at all.
func (r UpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Image == nil &&
		r.Country == nil && r.County == nil && r.City == nil &&
		r.LocationDescription == nil && r.Gym == nil && r.Spa == nil &&
		r.Bar == nil && r.Parking == nil && r.SwimmingPool == nil
}

// ApplyTo overwrites only the provided fields on the entity.
// The owner column is not reachable from here by construction.
func (r UpdateRequest) ApplyTo(h *House) {
	if r.Title != nil {
		h.Title = *r.Title
	}
	if r.Description != nil {
		h.Description = *r.Description
	}
	if r.Image != nil {
		h.Image = *r.Image
	}
	if r.Country != nil {
		h.Country = *r.Country
	}
	if r.County != nil {
		h.County = *r.County
	}
	if r.City != nil {
		h.City = *r.City
	}
	if r.LocationDescription != nil {
		h.LocationDescription = *r.LocationDescription
	}
	if r.Gym != nil {
		h.Gym = *r.Gym
	}
	if r.Spa != nil {
		h.Spa = *r.Spa
	}
	if r.Bar != nil {
		h.Bar = *r.Bar
	}
	if r.Parking != nil {
		h.Parking = *r.Parking
	}
	if r.SwimmingPool != nil {
		h.SwimmingPool = *r.SwimmingPool
	}
}
