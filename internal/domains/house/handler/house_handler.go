package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cozyhomes-backend/internal/domains/house/model"
	service "cozyhomes-backend/internal/domains/house/service"
	"cozyhomes-backend/internal/shared/middleware"
	"cozyhomes-backend/internal/shared/response"
	"cozyhomes-backend/internal/shared/utils"
	"cozyhomes-backend/pkg/cache"
)

const detailCacheTTL = 10 * time.Minute

// Handler - HTTP layer for house listings
type Handler struct {
	service service.ServiceInterface
	cache   cache.Cache
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface, cache cache.Cache) *Handler {
	return &Handler{
		service: service,
		cache:   cache,
	}
}

// CreateHouse - POST /v1/house
// Owner comes from the session, never from the body.
func (h *Handler) CreateHouse(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if !sess.Authenticated() {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	// Field-level validation happens before any persistence call.
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err)
		return
	}

	house, err := h.service.Create(c.Request.Context(), sess, req)
	if model.HandleHouseError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, house)
}

// UpdateHouse - PATCH /v1/house/:id
// Body is a partial draft; only provided fields are overwritten.
func (h *Handler) UpdateHouse(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if !sess.Authenticated() {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		response.BadRequest(c, "Invalid house ID")
		return
	}

	var req model.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err)
		return
	}

	house, err := h.service.Update(c.Request.Context(), sess, utils.ParseStringToUUID(id), req)
	if model.HandleHouseError(c, err) {
		return
	}

	// Drop the stale detail from cache; next read repopulates it.
	cacheKey := model.GenerateHouseDetailCacheKey(id)
	if err := h.cache.Delete(c.Request.Context(), cacheKey); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to invalidate house detail cache")
	}

	response.Success(c, http.StatusOK, house)
}

// GetHouseDetail - GET /v1/house/:id
func (h *Handler) GetHouseDetail(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if !sess.Authenticated() {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		response.BadRequest(c, "Invalid house ID")
		return
	}

	// Cache first. The cached value is still subject to the access
	// guard below, so a non-owner never sees cached data either.
	cacheKey := model.GenerateHouseDetailCacheKey(id)
	var cached model.HouseWithRooms
	found, err := h.cache.Get(c.Request.Context(), cacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("house detail cache read failed")
	}
	if found {
		if cached.UserID != sess.ActorID {
			response.Forbidden(c, "Access denied")
			return
		}
		response.Success(c, http.StatusOK, &cached)
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), sess, utils.ParseStringToUUID(id))
	if model.HandleHouseError(c, err) {
		return
	}

	if err := h.cache.Set(c.Request.Context(), cacheKey, detail, detailCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache house detail")
	}

	response.Success(c, http.StatusOK, detail)
}

// ListMyHouses - GET /v1/house
func (h *Handler) ListMyHouses(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if !sess.Authenticated() {
		response.Unauthorized(c, "Authentication required")
		return
	}

	houses, err := h.service.ListMine(c.Request.Context(), sess)
	if model.HandleHouseError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, houses)
}
