package model

// Task type names for the media queue.
const (
	TypeProcessImage = "media:process_image"
	TypeSweepOrphans = "media:sweep_orphans"
)

// QueueMedia is the asynq queue all media tasks run on.
const QueueMedia = "media"

// ProcessImagePayload asks the worker to render resized variants for an
// already-uploaded object.
type ProcessImagePayload struct {
	Key string `json:"key"`
}

// SweepOrphansPayload asks the worker to remove uploaded objects no
// house record references anymore.
type SweepOrphansPayload struct {
	OlderThanHours int `json:"older_than_hours"`
}

// ImageUpload is what a successful upload returns to the client.
type ImageUpload struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
