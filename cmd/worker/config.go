package main

import (
	"log"

	"cozyhomes-backend/internal/config"
	"cozyhomes-backend/pkg/container"
)

// Config holds what the worker process needs beyond the container.
type Config struct {
	RedisAddr   string
	Concurrency int
	Worker      config.WorkerConfig
}

func loadConfig(c *container.Container) *Config {
	cfg := &Config{
		RedisAddr:   c.Config.Redis.Host,
		Concurrency: c.Config.Worker.Concurrency,
		Worker:      c.Config.Worker,
	}

	log.Printf("[Config] Redis: %s, concurrency: %d, sweep: %q",
		cfg.RedisAddr, cfg.Concurrency, cfg.Worker.SweepSchedule)

	return cfg
}
