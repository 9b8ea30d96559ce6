package server

import (
	"context"
	"fmt"

	"taskflow/internal/config"
	"taskflow/internal/database"
	"taskflow/internal/events"
	"taskflow/internal/logger"
	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/service"
	"taskflow/internal/session"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// OpenStorage returns the configured domain store. db is nil for the memory
// driver.
func OpenStorage(cfg *config.Config, log *logger.Logger) (repository.Storage, *gorm.DB, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Infow("Using in-memory storage")
		return repository.NewMemoryStorage(), nil, nil
	case config.StorageDriverPostgres:
		db, err := database.Open(cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := database.Migrate(db); err != nil {
				_ = database.Close(db)
				return nil, nil, fmt.Errorf("auto migrate: %w", err)
			}
			log.Infow("Database migrations applied")
		}
		return repository.NewGormStorage(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// OpenSessionStore returns the configured session backend. The redis client,
// when one is created, is returned so the caller can close it.
func OpenSessionStore(ctx context.Context, cfg *config.Config, db *gorm.DB) (session.Store, *redis.Client, error) {
	switch cfg.Session.Store {
	case config.SessionStoreMemory:
		return session.NewMemoryStore(), nil, nil
	case config.SessionStoreDatabase:
		if db == nil {
			return nil, nil, fmt.Errorf("session store %q needs a database connection", cfg.Session.Store)
		}
		return session.NewGormStore(db), nil, nil
	case config.SessionStoreRedis:
		client, err := session.NewRedisClient(ctx, cfg.Redis.GetAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisStore(client), client, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
	}
}

// OpenPublisher connects to the broker, falling back to a no-op publisher
// when none is configured or it cannot be reached.
func OpenPublisher(cfg config.BrokerConfig, log *logger.Logger) events.Publisher {
	if cfg.URL == "" {
		return events.Noop{}
	}
	publisher, err := events.NewAMQPPublisher(cfg.URL, cfg.Queue)
	if err != nil {
		log.Warnw("Activity broker unavailable, events will not be published", "error", err)
		return events.Noop{}
	}
	log.Infow("Publishing activities", "queue", cfg.Queue)
	return publisher
}

// BootstrapAdmin upserts the configured admin account, if any.
func BootstrapAdmin(ctx context.Context, cfg config.BootstrapConfig, store repository.Storage, log *logger.Logger) error {
	if cfg.AdminUsername == "" {
		return nil
	}
	user, err := service.NewAuthService(store).EnsureUser(ctx, service.UpsertUserInput{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Role:     model.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	log.Infow("Bootstrap admin ready", "user_id", user.ID, "username", user.Username)
	return nil
}
