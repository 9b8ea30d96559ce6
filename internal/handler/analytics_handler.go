package handler

import (
	"context"
	"net/http"

	"taskflow/internal/logger"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	log       *logger.Logger
}

func NewAnalyticsHandler(analytics *service.AnalyticsService, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, log: log.WithComponent("analytics_handler")}
}

func serve[T any](h *AnalyticsHandler, fn func(context.Context) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := fn(c.Request.Context())
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// DashboardStats godoc
// @Summary      Task counters for the dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  service.DashboardStats
// @Router       /dashboard/stats [get]
func (h *AnalyticsHandler) DashboardStats() gin.HandlerFunc {
	return serve(h, h.analytics.DashboardStats)
}

// StatusDistribution godoc
// @Summary      Task counts per status
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  service.StatusStat
// @Router       /analytics/tasks [get]
func (h *AnalyticsHandler) StatusDistribution() gin.HandlerFunc {
	return serve(h, h.analytics.StatusDistribution)
}

// TeamPerformance godoc
// @Summary      Completion figures per team member
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  service.MemberPerformance
// @Router       /analytics/team-performance [get]
func (h *AnalyticsHandler) TeamPerformance() gin.HandlerFunc {
	return serve(h, h.analytics.TeamPerformance)
}

// CategoryDistribution godoc
// @Summary      Task counts per category
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  service.CategoryStat
// @Router       /analytics/categories [get]
func (h *AnalyticsHandler) CategoryDistribution() gin.HandlerFunc {
	return serve(h, h.analytics.CategoryDistribution)
}

// TimeTracking godoc
// @Summary      Weekly hours per member over the last 30 days
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  service.TimeTrackingRow
// @Router       /analytics/time-tracking [get]
func (h *AnalyticsHandler) TimeTracking() gin.HandlerFunc {
	return serve(h, h.analytics.TimeTracking)
}

// ProductivityTrends godoc
// @Summary      Tasks created and completed per week
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  service.ProductivityWeek
// @Router       /analytics/productivity-trends [get]
func (h *AnalyticsHandler) ProductivityTrends() gin.HandlerFunc {
	return serve(h, h.analytics.ProductivityTrends)
}

// WorkloadDistribution godoc
// @Summary      Open work per team member
// @Tags         analytics
// @Produce      json
// @Success      200  {array}  service.MemberWorkload
// @Router       /analytics/workload-distribution [get]
func (h *AnalyticsHandler) WorkloadDistribution() gin.HandlerFunc {
	return serve(h, h.analytics.WorkloadDistribution)
}
