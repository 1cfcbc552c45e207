package service

import (
	"context"
	"time"

	"cozyhomes-backend/internal/domains/media/model"
)

// MediaService owns the lifecycle of hosted house images: upload,
// explicit delete, variant rendering and the orphan sweep.
type MediaService interface {
	Upload(ctx context.Context, filename string, data []byte) (*model.ImageUpload, error)
	Delete(ctx context.Context, imageKey string) error
	ProcessImage(ctx context.Context, key string) error
	SweepOrphans(ctx context.Context, olderThan time.Duration) error
}

// UsageChecker answers whether any house record still references an
// image key. Satisfied by the house repository.
type UsageChecker interface {
	ImageKeyInUse(ctx context.Context, key string) (bool, error)
}
