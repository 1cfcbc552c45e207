package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"cozyhomes-backend/internal/config"
	mediaModel "cozyhomes-backend/internal/domains/media/model"
	"cozyhomes-backend/pkg/logger"
)

// Scheduler registers recurring media jobs with asynq.
type Scheduler struct {
	scheduler    *asynq.Scheduler
	workerConfig config.WorkerConfig
}

func NewScheduler(redisAddress string, workerConfig config.WorkerConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler:    scheduler,
		workerConfig: workerConfig,
	}
}

// RegisterJobs wires every cron entry the worker runs.
func (s *Scheduler) RegisterJobs() error {
	return s.registerSweepOrphansJob()
}

// The orphan sweep runs nightly during low traffic. The age floor
// keeps images attached to forms still being filled in safe from
// deletion.
func (s *Scheduler) registerSweepOrphansJob() error {
	payload, err := json.Marshal(mediaModel.SweepOrphansPayload{
		OlderThanHours: s.workerConfig.OrphanMinHours,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(mediaModel.TypeSweepOrphans, payload)

	_, err = s.scheduler.Register(
		s.workerConfig.SweepSchedule,
		task,
		asynq.Queue(mediaModel.QueueMedia),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register SweepOrphans job", err)
		return err
	}

	logger.Info("Registered SweepOrphans job", map[string]interface{}{
		"schedule":       s.workerConfig.SweepSchedule,
		"older_than_hrs": s.workerConfig.OrphanMinHours,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
