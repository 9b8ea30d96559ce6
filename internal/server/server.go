package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"taskflow/internal/config"
	"taskflow/internal/database"
	"taskflow/internal/events"
	"taskflow/internal/logger"
	"taskflow/internal/middleware"
	"taskflow/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	Config *config.Config

	log       *logger.Logger
	db        *gorm.DB
	redis     *redis.Client
	publisher events.Publisher
}

func Init(cfg *config.Config, log *logger.Logger) (*Server, error) {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	s := &Server{Config: cfg, log: log}

	store, db, err := OpenStorage(cfg, log)
	if err != nil {
		return nil, err
	}
	s.db = db

	sessionStore, redisClient, err := OpenSessionStore(ctx, cfg, db)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.redis = redisClient

	if err := BootstrapAdmin(ctx, cfg.Bootstrap, store, log); err != nil {
		s.Close()
		return nil, err
	}

	s.publisher = OpenPublisher(cfg.Broker, log)

	deps := Deps{
		Store: store,
		Sessions: session.NewManager(sessionStore, session.Options{
			Secret:     cfg.Session.Secret,
			TTL:        cfg.Session.TTL,
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.Secure,
		}),
		Publisher:    s.publisher,
		LoginLimiter: middleware.NewIPRateLimiter(cfg.RateLimit.LoginRequests, cfg.RateLimit.LoginWindow),
		Log:          log,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = middleware.NewMetrics()
	}

	s.Engine, err = NewRouter(deps)
	if err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run() error {
	defer s.Close()

	srv := &http.Server{
		Addr:         s.Config.Server.Addr(),
		Handler:      s.Engine,
		ReadTimeout:  s.Config.Server.ReadTimeout,
		WriteTimeout: s.Config.Server.WriteTimeout,
		IdleTimeout:  s.Config.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("Server running", "addr", srv.Addr, "environment", s.Config.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	s.log.Infow("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	s.log.Infow("Server exited properly")
	return nil
}

// Close releases the broker, redis and database connections.
func (s *Server) Close() {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			s.log.Warnw("Failed to close publisher", "error", err)
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.log.Warnw("Failed to close redis client", "error", err)
		}
	}
	if s.db != nil {
		if err := database.Close(s.db); err != nil {
			s.log.Warnw("Failed to close database", "error", err)
		}
	}
}
