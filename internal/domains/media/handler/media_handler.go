package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cozyhomes-backend/internal/domains/media/model"
	service "cozyhomes-backend/internal/domains/media/service"
	"cozyhomes-backend/internal/shared/middleware"
	"cozyhomes-backend/internal/shared/response"
)

// maxUploadBytes caps the multipart body before the service-level
// image validation runs.
const maxUploadBytes = 6 << 20

// Handler - HTTP layer for the hosted-image endpoints
type Handler struct {
	service service.MediaService
}

func NewHandler(service service.MediaService) *Handler {
	return &Handler{service: service}
}

// DeleteRequest carries the key of the hosted file to remove.
type DeleteRequest struct {
	ImageKey string `json:"imagekey"`
}

// UploadImage - POST /v1/uploadthing/upload
// Multipart upload of a single image file.
func (h *Handler) UploadImage(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if !sess.Authenticated() {
		response.Unauthorized(c, "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		response.BadRequest(c, "file too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "cannot read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		response.BadRequest(c, "cannot read file")
		return
	}

	upload, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, model.ErrInvalidImage) {
			response.BadRequest(c, err.Error())
			return
		}
		log.Error().Err(err).Msg("Image upload failed")
		response.InternalServerError(c, "Upload failed")
		return
	}

	response.Success(c, http.StatusOK, upload)
}

// DeleteImage - POST /v1/uploadthing/delete
// Removes the hosted file named by imagekey. Missing key is a client
// error; an upstream storage failure is a 500.
func (h *Handler) DeleteImage(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if !sess.Authenticated() {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}
	if req.ImageKey == "" {
		response.BadRequest(c, "imagekey is required")
		return
	}

	err := h.service.Delete(c.Request.Context(), req.ImageKey)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, gin.H{"deleted": req.ImageKey})
	case errors.Is(err, model.ErrImageNotFound):
		response.NotFound(c, "Image not found")
	case errors.Is(err, model.ErrMissingImageKey):
		response.BadRequest(c, "imagekey is required")
	default:
		log.Error().Err(err).Str("imagekey", req.ImageKey).Msg("Image delete failed")
		response.InternalServerError(c, "Delete failed")
	}
}
