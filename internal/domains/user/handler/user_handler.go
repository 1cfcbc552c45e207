package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cozyhomes-backend/internal/domains/user/model"
	service "cozyhomes-backend/internal/domains/user/service"
	"cozyhomes-backend/internal/shared/middleware"
	"cozyhomes-backend/internal/shared/response"
)

// Handler - HTTP layer for accounts and sessions
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Register - POST /v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err)
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			response.Conflict(c, "Email already registered")
			return
		}
		log.Error().Err(err).Msg("Registration failed")
		response.InternalServerError(c, "Registration failed")
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Login - POST /v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.Unauthorized(c, "Invalid email or password")
			return
		}
		log.Error().Err(err).Msg("Login failed")
		response.InternalServerError(c, "Login failed")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetProfile - GET /v1/auth/me
func (h *Handler) GetProfile(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if !sess.Authenticated() {
		response.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), sess.ActorID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		log.Error().Err(err).Msg("Profile lookup failed")
		response.InternalServerError(c, "Profile lookup failed")
		return
	}

	response.Success(c, http.StatusOK, user)
}
