package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"cozyhomes-backend/internal/domains/media/model"
	mediaService "cozyhomes-backend/internal/domains/media/service"
)

// ProcessImageHandler renders resized variants of an uploaded image.
type ProcessImageHandler struct {
	mediaService mediaService.MediaService
}

func NewProcessImageHandler(mediaService mediaService.MediaService) *ProcessImageHandler {
	return &ProcessImageHandler{
		mediaService: mediaService,
	}
}

func (h *ProcessImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.ProcessImagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal ProcessImage payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().
		Str("key", payload.Key).
		Msg("Rendering image variants")

	if err := h.mediaService.ProcessImage(ctx, payload.Key); err != nil {
		log.Error().
			Err(err).
			Str("key", payload.Key).
			Msg("Failed to render image variants")
		return fmt.Errorf("process image: %w", err)
	}

	return nil
}
