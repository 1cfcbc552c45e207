package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"cozyhomes-backend/internal/config"
	infraCache "cozyhomes-backend/internal/infrastructure/cache"
	"cozyhomes-backend/internal/infrastructure/database"
	"cozyhomes-backend/internal/infrastructure/storage"
	"cozyhomes-backend/pkg/cache"
	"cozyhomes-backend/pkg/jwt"

	houseHandler "cozyhomes-backend/internal/domains/house/handler"
	houseRepo "cozyhomes-backend/internal/domains/house/repository"
	houseService "cozyhomes-backend/internal/domains/house/service"
	"cozyhomes-backend/internal/domains/location"
	locationHandler "cozyhomes-backend/internal/domains/location/handler"
	mediaHandler "cozyhomes-backend/internal/domains/media/handler"
	mediaService "cozyhomes-backend/internal/domains/media/service"
	userHandler "cozyhomes-backend/internal/domains/user/handler"
	userRepo "cozyhomes-backend/internal/domains/user/repository"
	userService "cozyhomes-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is
// a singleton created once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	Processor   *storage.ImageProcessor
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client
	Resolver    *location.Resolver

	UserRepo  userRepo.Repository
	HouseRepo houseRepo.Repository

	UserService  userService.ServiceInterface
	HouseService houseService.ServiceInterface
	MediaService mediaService.MediaService

	UserHandler     *userHandler.Handler
	HouseHandler    *houseHandler.Handler
	MediaHandler    *mediaHandler.Handler
	LocationHandler *locationHandler.Handler
}

func NewContainer() (*Container, error) {
	log.Println("Initializing DI container...")

	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("Config loaded (environment: %s)", cfg.App.Environment)

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	if err := c.initDomains(); err != nil {
		return nil, err
	}

	log.Println("DI container initialized")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	log.Println("Database connected")

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	// Connect is not part of the cache interface.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Cache failure is non-critical: reads fall through to the DB.
			log.Printf("Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("Redis connected")
		}
	}
	c.Cache = redisCache

	minioStorage, err := storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage
	c.Processor = storage.NewImageProcessor()
	log.Println("Object storage ready")

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, c.Config.JWT.AccessTokenExpiry)

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})

	resolver, err := location.NewResolver()
	if err != nil {
		return fmt.Errorf("failed to load location dataset: %w", err)
	}
	c.Resolver = resolver

	return nil
}

func (c *Container) initDomains() error {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.HouseRepo = houseRepo.NewPostgresRepository(pool)

	c.UserService = userService.NewService(c.UserRepo, c.JWTManager)
	c.HouseService = houseService.NewService(c.HouseRepo)
	c.MediaService = mediaService.NewMediaService(c.Storage, c.Processor, c.HouseRepo, c.AsynqClient)

	c.UserHandler = userHandler.NewHandler(c.UserService)
	c.HouseHandler = houseHandler.NewHandler(c.HouseService, c.Cache)
	c.MediaHandler = mediaHandler.NewHandler(c.MediaService)
	c.LocationHandler = locationHandler.NewHandler(c.Resolver)

	return nil
}

// Close releases all long-lived connections. Safe to call on a
// partially built container.
func (c *Container) Close() {
	if c.AsynqClient != nil {
		c.AsynqClient.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		rc.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
