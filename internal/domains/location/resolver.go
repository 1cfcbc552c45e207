package location

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed dataset.json
var datasetJSON []byte

// Country is one entry of the static geographic dataset.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type City struct {
	Name string `json:"name"`
}

// rawCountry mirrors the embedded JSON layout.
type rawCountry struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	States []struct {
		Code   string   `json:"code"`
		Name   string   `json:"name"`
		Cities []string `json:"cities"`
	} `json:"states"`
}

// Resolver answers country/state/city lookups from the embedded dataset.
// Lookups are pure: no I/O, no errors, unknown codes yield empty slices.
type Resolver struct {
	countries []Country
	states    map[string][]State // country code -> states, dataset order
	cities    map[string][]City  // country code + "/" + state code -> cities
}

// NewResolver parses the embedded dataset once.
func NewResolver() (*Resolver, error) {
	var raw []rawCountry
	if err := json.Unmarshal(datasetJSON, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse location dataset: %w", err)
	}

	r := &Resolver{
		countries: make([]Country, 0, len(raw)),
		states:    make(map[string][]State, len(raw)),
		cities:    make(map[string][]City),
	}

	for _, rc := range raw {
		r.countries = append(r.countries, Country{Code: rc.Code, Name: rc.Name})

		states := make([]State, 0, len(rc.States))
		for _, rs := range rc.States {
			states = append(states, State{Code: rs.Code, Name: rs.Name})

			cities := make([]City, 0, len(rs.Cities))
			for _, name := range rs.Cities {
				cities = append(cities, City{Name: name})
			}
			r.cities[rc.Code+"/"+rs.Code] = cities
		}
		r.states[rc.Code] = states
	}

	return r, nil
}

// Countries returns the full country list in dataset order.
func (r *Resolver) Countries() []Country {
	return r.countries
}

// StatesForCountry returns the states of a country.
// Unknown or empty codes yield an empty slice, never an error.
func (r *Resolver) StatesForCountry(countryCode string) []State {
	states, ok := r.states[countryCode]
	if !ok {
		return []State{}
	}
	return states
}

// CitiesForState returns the cities of a (country, state) pair,
// with the same empty-on-unknown policy.
func (r *Resolver) CitiesForState(countryCode, stateCode string) []City {
	cities, ok := r.cities[countryCode+"/"+stateCode]
	if !ok {
		return []City{}
	}
	return cities
}
