package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"cozyhomes-backend/internal/domains/media/model"
	"cozyhomes-backend/internal/infrastructure/storage"
	"cozyhomes-backend/pkg/logger"
)

const (
	// objectPrefix is where original uploads live in the bucket.
	objectPrefix = "houses/"

	// variantPrefix is where resized copies live, named
	// "<variant>_<original file>".
	variantPrefix = "houses/variants/"
)

type mediaService struct {
	storage        *storage.MinIOStorage
	imageProcessor *storage.ImageProcessor
	usage          UsageChecker
	asynqClient    *asynq.Client
}

func NewMediaService(
	st *storage.MinIOStorage,
	imageProcessor *storage.ImageProcessor,
	usage UsageChecker,
	asynqClient *asynq.Client,
) MediaService {
	return &mediaService{
		storage:        st,
		imageProcessor: imageProcessor,
		usage:          usage,
		asynqClient:    asynqClient,
	}
}

// Upload validates the file, stores it under a fresh key and enqueues
// variant rendering. The returned key is what a later delete request
// must present.
func (s *mediaService) Upload(ctx context.Context, filename string, data []byte) (*model.ImageUpload, error) {
	if err := s.imageProcessor.ValidateImage(data); err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidImage, err.Error())
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext != ".png" {
		ext = ".jpg"
	}

	file := uuid.New().String() + ext
	key := objectPrefix + file

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	publicURL, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	s.enqueueProcess(key)

	return &model.ImageUpload{
		Key: file,
		URL: publicURL,
	}, nil
}

// enqueueProcess schedules variant rendering. Best effort: the original
// is already stored and usable, so a queue failure is only logged.
func (s *mediaService) enqueueProcess(key string) {
	payload, err := json.Marshal(model.ProcessImagePayload{Key: key})
	if err != nil {
		logger.Error("Failed to marshal process image payload", err)
		return
	}

	task := asynq.NewTask(model.TypeProcessImage, payload)
	if _, err := s.asynqClient.Enqueue(task, asynq.Queue(model.QueueMedia), asynq.MaxRetry(2)); err != nil {
		logger.Error("Failed to enqueue process image task", err)
	}
}

// Delete removes the object named by the client-supplied key, plus any
// rendered variants. The key is the trailing path segment of the
// hosted URL, never a full path, so it is re-anchored under the upload
// prefix before touching the bucket.
func (s *mediaService) Delete(ctx context.Context, imageKey string) error {
	if imageKey == "" {
		return model.ErrMissingImageKey
	}

	// A key containing a slash would escape the upload prefix.
	file := path.Base(imageKey)

	if err := s.storage.Delete(ctx, objectPrefix+file); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return model.ErrImageNotFound
		}
		return fmt.Errorf("delete image: %w", err)
	}

	s.deleteVariants(ctx, file)

	return nil
}

// deleteVariants removes rendered copies. Missing variants are fine:
// rendering may not have run yet.
func (s *mediaService) deleteVariants(ctx context.Context, file string) {
	for _, variant := range []string{"large", "medium", "thumbnail"} {
		key := variantPrefix + variant + "_" + file
		if err := s.storage.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			logger.Error("Failed to delete image variant", err)
		}
	}
}

// ProcessImage downloads the original and uploads resized variants.
// Called from the worker.
func (s *mediaService) ProcessImage(ctx context.Context, key string) error {
	data, err := s.storage.Download(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			// Deleted between enqueue and processing. Nothing to do.
			logger.Info("Original gone before variant rendering", map[string]interface{}{
				"key": key,
			})
			return nil
		}
		return fmt.Errorf("download original: %w", err)
	}

	if err := s.imageProcessor.ValidateImage(data); err != nil {
		return fmt.Errorf("invalid original %s: %w", key, err)
	}

	variants, err := s.imageProcessor.ProcessImage(data)
	if err != nil {
		return fmt.Errorf("render variants: %w", err)
	}

	file := strings.TrimPrefix(key, objectPrefix)
	for name, variantData := range variants {
		variantKey := variantPrefix + name + "_" + file
		if _, err := s.storage.Upload(ctx, variantKey, variantData, "image/jpeg"); err != nil {
			return fmt.Errorf("upload variant %s: %w", name, err)
		}
	}

	logger.Info("Image variants rendered", map[string]interface{}{
		"key":      key,
		"variants": len(variants),
	})

	return nil
}

// SweepOrphans deletes uploaded objects old enough that no in-flight
// form can still claim them and that no house record references.
func (s *mediaService) SweepOrphans(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)

	objects, err := s.storage.ListOlderThan(ctx, objectPrefix, cutoff)
	if err != nil {
		return fmt.Errorf("list candidates: %w", err)
	}

	var removed int
	for _, obj := range objects {
		file := baseFile(obj.Key)
		if file == "" {
			continue
		}

		inUse, err := s.usage.ImageKeyInUse(ctx, file)
		if err != nil {
			return fmt.Errorf("check usage of %s: %w", file, err)
		}
		if inUse {
			continue
		}

		if err := s.storage.Delete(ctx, obj.Key); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			logger.Error("Failed to delete orphan object", err)
			continue
		}
		removed++
	}

	logger.Info("Orphan image sweep finished", map[string]interface{}{
		"candidates": len(objects),
		"removed":    removed,
	})

	return nil
}

// baseFile maps a bucket key back to the original file name a house
// record would reference. Variant keys resolve to the file they were
// rendered from.
func baseFile(key string) string {
	if strings.HasPrefix(key, variantPrefix) {
		name := strings.TrimPrefix(key, variantPrefix)
		if _, file, ok := strings.Cut(name, "_"); ok {
			return file
		}
		return name
	}

	file := strings.TrimPrefix(key, objectPrefix)
	if strings.Contains(file, "/") {
		// Unknown layout under the prefix; leave it alone.
		return ""
	}
	return file
}

// KeyFromURL extracts the image key from a hosted URL: the trailing
// path segment. Returns "" for unparseable input.
func KeyFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return ""
	}

	key := path.Base(u.Path)
	if key == "." || key == "/" {
		return ""
	}
	return key
}
