package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cozyhomes-backend/internal/shared/response"
)

var (
	ErrHouseNotFound = errors.New("house not found")
	ErrNotOwner      = errors.New("actor is not the owner of this house")
	ErrUnauthorized  = errors.New("actor is not authenticated")
	ErrEmptyUpdate   = errors.New("update carries no fields")
)

var houseErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrHouseNotFound: {
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "The specified house does not exist",
	},
	ErrNotOwner: {
		Status:  http.StatusForbidden,
		Code:    "FORBIDDEN",
		Message: "Access denied",
	},
	ErrUnauthorized: {
		Status:  http.StatusUnauthorized,
		Code:    "UNAUTHORIZED",
		Message: "Authentication required",
	},
	ErrEmptyUpdate: {
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "Update request contains no fields",
	},
}

// HandleHouseError maps domain errors to envelope responses.
// Returns true when err was handled and the handler should stop.
// Unknown errors are logged and collapsed into a generic 500; the raw
// failure never reaches the client.
func HandleHouseError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range houseErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("house operation failed")
	response.InternalServerError(c, "Internal server error")
	return true
}
