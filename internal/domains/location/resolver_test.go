package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResolver(t *testing.T) {
	r, err := NewResolver()
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestCountries(t *testing.T) {
	r, err := NewResolver()
	require.NoError(t, err)

	countries := r.Countries()
	require.NotEmpty(t, countries)

	// Dataset order is preserved and the first entry is stable.
	assert.Equal(t, "US", countries[0].Code)
	assert.Equal(t, "United States", countries[0].Name)

	seen := map[string]bool{}
	for _, c := range countries {
		assert.NotEmpty(t, c.Code)
		assert.NotEmpty(t, c.Name)
		assert.False(t, seen[c.Code], "duplicate country code %s", c.Code)
		seen[c.Code] = true
	}
}

func TestStatesForCountry(t *testing.T) {
	r, err := NewResolver()
	require.NoError(t, err)

	states := r.StatesForCountry("US")
	require.NotEmpty(t, states)
	assert.Equal(t, "CA", states[0].Code)
	assert.Equal(t, "California", states[0].Name)
}

func TestStatesForCountry_Unknown(t *testing.T) {
	r, err := NewResolver()
	require.NoError(t, err)

	// Unknown and empty codes yield empty slices, never errors.
	assert.Empty(t, r.StatesForCountry("ZZ"))
	assert.Empty(t, r.StatesForCountry(""))
	assert.Empty(t, r.StatesForCountry("us")) // codes are case-sensitive
}

func TestCitiesForState(t *testing.T) {
	r, err := NewResolver()
	require.NoError(t, err)

	cities := r.CitiesForState("US", "CA")
	require.NotEmpty(t, cities)
	assert.Equal(t, "Los Angeles", cities[0].Name)
}

func TestCitiesForState_Unknown(t *testing.T) {
	r, err := NewResolver()
	require.NoError(t, err)

	assert.Empty(t, r.CitiesForState("US", "ZZ"))
	assert.Empty(t, r.CitiesForState("ZZ", "CA"))
	assert.Empty(t, r.CitiesForState("", ""))

	// A state code valid in one country is not valid in another.
	require.NotEmpty(t, r.CitiesForState("CA", "ON"))
	assert.Empty(t, r.CitiesForState("US", "ON"))
}
