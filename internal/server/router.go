package server

import (
	"errors"

	_ "taskflow/docs"
	"taskflow/internal/events"
	"taskflow/internal/handler"
	"taskflow/internal/logger"
	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/service"
	"taskflow/internal/session"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps is everything the HTTP layer needs. Metrics, LoginLimiter and
// Publisher are optional.
type Deps struct {
	Store        repository.Storage
	Sessions     *session.Manager
	Publisher    events.Publisher
	Metrics      *middleware.Metrics
	LoginLimiter *middleware.IPRateLimiter
	Log          *logger.Logger
	Clock        service.Clock
}

// NewRouter builds the gin engine with every route mounted.
func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Store == nil || d.Sessions == nil || d.Log == nil {
		return nil, errors.New("router requires a store, a session manager and a logger")
	}
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	taskService := service.NewTaskService(d.Store, d.Publisher, d.Log)
	analyticsService := service.NewAnalyticsService(d.Store)
	if d.Clock != nil {
		taskService.WithClock(d.Clock)
		analyticsService.WithClock(d.Clock)
	}
	teamService := service.NewTeamService(d.Store)
	authService := service.NewAuthService(d.Store)
	activityService := service.NewActivityService(d.Store)
	dataService := service.NewDataService(d.Store, taskService, d.Log)

	authHandler := handler.NewAuthHandler(authService, d.Sessions, d.Log)
	memberHandler := handler.NewTeamMemberHandler(teamService, d.Log)
	categoryHandler := handler.NewCategoryHandler(teamService, d.Log)
	taskHandler := handler.NewTaskHandler(taskService, d.Log)
	timeHandler := handler.NewTimeEntryHandler(taskService, d.Log)
	activityHandler := handler.NewActivityHandler(activityService, d.Log)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, d.Log)
	dataHandler := handler.NewDataHandler(dataService, d.Log)
	healthHandler := handler.NewHealthHandler(d.Store, d.Log)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Log))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authenticated := middleware.RequireAuth()
	admin := middleware.RequireRole(d.Log, model.RoleAdmin)
	adminPlus := middleware.RequireRole(d.Log, model.RoleAdmin, model.RoleSuperAdmin)

	api := r.Group("/api")
	api.Use(middleware.Sessions(d.Sessions, d.Log))
	{
		login := []gin.HandlerFunc{authHandler.Login}
		if d.LoginLimiter != nil {
			login = append([]gin.HandlerFunc{middleware.RateLimit(d.LoginLimiter)}, login...)
		}
		api.POST("/auth/login", login...)
		api.POST("/auth/guest", authHandler.Guest)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/user", authHandler.CurrentUser)

		api.GET("/team-members", authenticated, memberHandler.List)
		api.POST("/team-members", adminPlus, memberHandler.Create)
		api.PUT("/team-members/:id", admin, memberHandler.Update)
		api.DELETE("/team-members/:id", admin, memberHandler.Delete)

		api.GET("/categories", authenticated, categoryHandler.List)
		api.POST("/categories", adminPlus, categoryHandler.Create)
		api.PUT("/categories/:id", admin, categoryHandler.Update)
		api.DELETE("/categories/:id", admin, categoryHandler.Delete)

		api.GET("/tasks", authenticated, taskHandler.List)
		api.GET("/tasks/:id", taskHandler.GetByID)
		api.POST("/tasks", admin, taskHandler.Create)
		api.PUT("/tasks/:id", admin, taskHandler.Update)
		api.DELETE("/tasks/:id", admin, taskHandler.Delete)

		api.GET("/time-entries", timeHandler.List)
		api.POST("/time-entries", timeHandler.Create)

		api.GET("/activities", activityHandler.List)
		api.GET("/dashboard/stats", analyticsHandler.DashboardStats())

		analytics := api.Group("/analytics", authenticated)
		analytics.GET("/tasks", analyticsHandler.StatusDistribution())
		analytics.GET("/team-performance", analyticsHandler.TeamPerformance())
		analytics.GET("/categories", analyticsHandler.CategoryDistribution())
		analytics.GET("/time-tracking", analyticsHandler.TimeTracking())
		analytics.GET("/productivity-trends", analyticsHandler.ProductivityTrends())
		analytics.GET("/workload-distribution", analyticsHandler.WorkloadDistribution())

		api.DELETE("/data/clear-all", admin, dataHandler.ClearAll)
	}

	return r, nil
}
