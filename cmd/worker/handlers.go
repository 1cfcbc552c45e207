package main

import (
	"github.com/hibiken/asynq"

	mediaJob "cozyhomes-backend/internal/domains/media/job"
	mediaModel "cozyhomes-backend/internal/domains/media/model"
	"cozyhomes-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	processImage *mediaJob.ProcessImageHandler
	sweepOrphans *mediaJob.SweepOrphansHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		processImage: mediaJob.NewProcessImageHandler(c.MediaService),
		sweepOrphans: mediaJob.NewSweepOrphansHandler(c.MediaService),
	}
}

// RegisterHandlers maps task types to their handlers.
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(mediaModel.TypeProcessImage, r.processImage)
	mux.Handle(mediaModel.TypeSweepOrphans, r.sweepOrphans)
}
