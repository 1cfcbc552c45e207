package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"cozyhomes-backend/internal/domains/media/model"
	mediaService "cozyhomes-backend/internal/domains/media/service"
)

// SweepOrphansHandler removes hosted images no house references. Runs
// on a nightly schedule; the age floor keeps files belonging to forms
// still being filled in out of reach.
type SweepOrphansHandler struct {
	mediaService mediaService.MediaService
}

func NewSweepOrphansHandler(mediaService mediaService.MediaService) *SweepOrphansHandler {
	return &SweepOrphansHandler{
		mediaService: mediaService,
	}
}

func (h *SweepOrphansHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload model.SweepOrphansPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal SweepOrphans payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	olderThan := time.Duration(payload.OlderThanHours) * time.Hour
	if olderThan <= 0 {
		olderThan = 24 * time.Hour
	}

	log.Info().
		Dur("older_than", olderThan).
		Msg("Starting orphan image sweep")

	if err := h.mediaService.SweepOrphans(ctx, olderThan); err != nil {
		log.Error().Err(err).Msg("Orphan image sweep failed")
		return fmt.Errorf("sweep orphans: %w", err)
	}

	return nil
}
