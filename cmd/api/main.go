package main

import (
	"context"
	"database/sql"
	"log"

	"relay-chat/config"
	"relay-chat/internal/events"
	"relay-chat/internal/handler"
	"relay-chat/internal/redis"
	"relay-chat/internal/repository"
	"relay-chat/internal/server"
	"relay-chat/internal/services"
	"relay-chat/internal/storage"
	"relay-chat/pkg/database"
	"relay-chat/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.NewWithOptions(mode, logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	logger.SetGlobalLogger(l)
	defer l.Sync()

	ctx := context.Background()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up object storage: %v", err)
	}

	var publisher services.EventPublisher
	var redisCheck handler.HealthCheck
	if cfg.RedisEnabled() {
		client := redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		if err := redis.Ping(ctx, client); err != nil {
			l.Warnf("Redis unreachable at %s:%s, events will be dropped until it recovers: %v", cfg.RedisHost, cfg.RedisPort, err)
		}
		publisher = events.NewBus(redis.NewPublisher(client), l)
		redisCheck = func(ctx context.Context) error { return redis.Ping(ctx, client) }
	}

	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	authService, err := services.NewAuthService(userRepo, publisher, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to set up auth service: %v", err)
	}
	messengerService := services.NewMessengerService(userRepo, contactRepo, messageRepo, publisher)
	uploadService := services.NewUploadService(store, cfg.UploadMaxBytes)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Auth:      handler.NewAuthHandler(authService, l),
		Messenger: handler.NewMessengerHandler(messengerService, l),
		Upload:    handler.NewUploadHandler(uploadService, l, cfg.UploadMaxBytes),
		Health:    handler.NewHealthHandler(dbCheck(db), redisCheck, l),
	})

	if err := srv.Start(); err != nil {
		l.Errorf("Server exited with error: %v", err)
	}
}

func newObjectStore(ctx context.Context, cfg *config.Config) (storage.ObjectStore, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverS3:
		return storage.NewS3Store(ctx, storage.S3Config{
			Region:     cfg.S3Region,
			Bucket:     cfg.S3Bucket,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			Endpoint:   cfg.S3Endpoint,
			PublicBase: cfg.StoragePublicBase,
		})
	default:
		return storage.NewMockStore(cfg.StoragePublicBase), nil
	}
}

func dbCheck(db *sql.DB) handler.HealthCheck {
	return func(ctx context.Context) error { return database.HealthCheck(ctx, db) }
}
