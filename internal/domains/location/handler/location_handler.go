package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cozyhomes-backend/internal/domains/location"
	"cozyhomes-backend/internal/shared/response"
)

// Handler serves the static location option lists consumed by the
// listing form's country/county/city dropdowns.
type Handler struct {
	resolver *location.Resolver
}

func NewHandler(resolver *location.Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// ListCountries - GET /v1/locations/countries
func (h *Handler) ListCountries(c *gin.Context) {
	response.Success(c, http.StatusOK, h.resolver.Countries())
}

// ListStates - GET /v1/locations/countries/:code/states
// Unknown country codes return an empty list, not a 404.
func (h *Handler) ListStates(c *gin.Context) {
	code := c.Param("code")
	response.Success(c, http.StatusOK, h.resolver.StatesForCountry(code))
}

// ListCities - GET /v1/locations/countries/:code/states/:state/cities
func (h *Handler) ListCities(c *gin.Context) {
	code := c.Param("code")
	state := c.Param("state")
	response.Success(c, http.StatusOK, h.resolver.CitiesForState(code, state))
}
