package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskflow/internal/logger"
	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/internal/repository"
	"taskflow/internal/service"
	"taskflow/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t      *testing.T
	router *gin.Engine
	store  *repository.MemoryStorage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStorage()
	log := logger.NewNop()
	auth := service.NewAuthService(store)
	ctx := context.Background()
	_, err := auth.EnsureUser(ctx, service.UpsertUserInput{Username: "admin", Password: "s3cret", Role: model.RoleAdmin})
	require.NoError(t, err)
	_, err = auth.EnsureUser(ctx, service.UpsertUserInput{Username: "root", Password: "s3cret", Role: model.RoleSuperAdmin})
	require.NoError(t, err)

	router, err := NewRouter(Deps{
		Store: store,
		Sessions: session.NewManager(session.NewMemoryStore(), session.Options{
			Secret:     "test-secret",
			TTL:        time.Hour,
			CookieName: "taskflow.sid",
		}),
		Metrics:      middleware.NewMetrics(),
		LoginLimiter: middleware.NewIPRateLimiter(100, time.Minute),
		Log:          log,
	})
	require.NoError(t, err)

	return &testServer{t: t, router: router, store: store}
}

func (s *testServer) do(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	s.router.ServeHTTP(resp, req)
	return resp
}

func (s *testServer) login(username, password string) (*httptest.ResponseRecorder, *http.Cookie) {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp := s.do(http.MethodPost, "/api/auth/login", string(body), nil)
	for _, c := range resp.Result().Cookies() {
		if c.Name == "taskflow.sid" {
			return resp, c
		}
	}
	return resp, nil
}

func (s *testServer) adminCookie() *http.Cookie {
	resp, cookie := s.login("admin", "s3cret")
	require.Equal(s.t, http.StatusOK, resp.Code)
	require.NotNil(s.t, cookie)
	return cookie
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), v))
}

func TestLogin_WrongPasswordThenProtectedRoute(t *testing.T) {
	s := newTestServer(t)

	resp, cookie := s.login("admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Nil(t, cookie)

	resp = s.do(http.MethodGet, "/api/team-members", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(http.MethodPost, "/api/auth/login", `{"username":"admin"}`, nil)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLogin_ReturnsProjection(t *testing.T) {
	s := newTestServer(t)

	resp, cookie := s.login("admin", "s3cret")
	require.Equal(t, http.StatusOK, resp.Code)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	var body struct {
		User map[string]interface{} `json:"user"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, "admin", body.User["username"])
	assert.Equal(t, "admin", body.User["role"])
	_, leaked := body.User["passwordHash"]
	assert.False(t, leaked)

	me := s.do(http.MethodGet, "/api/auth/user", "", cookie)
	require.Equal(t, http.StatusOK, me.Code)
	var user map[string]interface{}
	decodeJSON(t, me, &user)
	assert.Equal(t, body.User["id"], user["id"])
}

func TestGuestSession(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(http.MethodPost, "/api/auth/guest", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"user":{"id":"guest","username":"Guest User","firstName":"Guest","lastName":"User","email":null,"role":"guest"}}`, resp.Body.String())
	cookie := resp.Result().Cookies()[0]

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/team-members", "", cookie).Code)
	me := s.do(http.MethodGet, "/api/auth/user", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, me.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, me.Body.String())

	forbidden := s.do(http.MethodPost, "/api/tasks", `{"title":"x"}`, cookie)
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	assert.JSONEq(t, `{"message":"Insufficient permissions"}`, forbidden.Body.String())
}

func TestLogout(t *testing.T) {
	s := newTestServer(t)
	cookie := s.adminCookie()

	resp := s.do(http.MethodPost, "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, resp.Code)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/auth/user", "", cookie).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/tasks", "", cookie).Code)
}

func TestRoleGuards(t *testing.T) {
	s := newTestServer(t)
	_, root := s.login("root", "s3cret")
	require.NotNil(t, root)

	// super_admin may create members and categories but not tasks.
	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/team-members",
		`{"name":"New","email":"new@company.com","role":"QA"}`, root).Code)
	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/categories", `{"name":"Ops"}`, root).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/api/tasks", `{"title":"x"}`, root).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/api/team-members/1", "", root).Code)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPost, "/api/tasks", `{"title":"x"}`, nil).Code)
}

func TestTaskLifecycleScenario(t *testing.T) {
	s := newTestServer(t)
	admin := s.adminCookie()

	resp := s.do(http.MethodPost, "/api/tasks", `{"title":"Write release notes"}`, admin)
	require.Equal(t, http.StatusCreated, resp.Code)
	var created model.Task
	decodeJSON(t, resp, &created)
	assert.Equal(t, model.StatusTodo, created.Status)
	assert.Equal(t, model.PriorityMedium, created.Priority)

	time.Sleep(5 * time.Millisecond)
	resp = s.do(http.MethodPut, "/api/tasks/1", `{"status":"completed"}`, admin)
	require.Equal(t, http.StatusOK, resp.Code)
	var updated model.Task
	decodeJSON(t, resp, &updated)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	var activities []model.Activity
	decodeJSON(t, s.do(http.MethodGet, "/api/activities", "", nil), &activities)
	require.Len(t, activities, 2)
	assert.Equal(t, model.ActivityUpdated, activities[0].Type)
	assert.Equal(t, "Task status changed to completed", activities[0].Description)
	assert.Equal(t, `Task "Write release notes" was created`, activities[1].Description)

	var stats service.DashboardStats
	decodeJSON(t, s.do(http.MethodGet, "/api/dashboard/stats", "", nil), &stats)
	assert.Equal(t, service.DashboardStats{TotalTasks: 1, Completed: 1}, stats)
}

func TestAnalyticsEndpoints(t *testing.T) {
	s := newTestServer(t)
	admin := s.adminCookie()
	s.do(http.MethodPost, "/api/tasks", `{"title":"a","assigneeId":1,"priority":"urgent"}`, admin)

	paths := []string{
		"/api/analytics/tasks",
		"/api/analytics/team-performance",
		"/api/analytics/categories",
		"/api/analytics/time-tracking",
		"/api/analytics/productivity-trends",
		"/api/analytics/workload-distribution",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, p, "", nil).Code)
			assert.Equal(t, http.StatusOK, s.do(http.MethodGet, p, "", admin).Code)
		})
	}

	var workload []service.MemberWorkload
	decodeJSON(t, s.do(http.MethodGet, "/api/analytics/workload-distribution", "", admin), &workload)
	require.Len(t, workload, 4)
	assert.Equal(t, 1, workload[0].PendingTasks)
	assert.Equal(t, 1, workload[0].HighPriorityTasks)

	var statuses []service.StatusStat
	decodeJSON(t, s.do(http.MethodGet, "/api/analytics/tasks", "", admin), &statuses)
	assert.Len(t, statuses, 3)
}

func TestClearAll(t *testing.T) {
	s := newTestServer(t)
	admin := s.adminCookie()
	s.do(http.MethodPost, "/api/tasks", `{"title":"a"}`, admin)
	s.do(http.MethodPost, "/api/team-members", `{"name":"Extra","email":"extra@company.com","role":"QA"}`, admin)

	resp := s.do(http.MethodDelete, "/api/data/clear-all", "", admin)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success":true,"message":"All data cleared successfully"}`, resp.Body.String())

	var tasks []model.Task
	decodeJSON(t, s.do(http.MethodGet, "/api/tasks", "", admin), &tasks)
	assert.Empty(t, tasks)

	var members []model.TeamMember
	decodeJSON(t, s.do(http.MethodGet, "/api/team-members", "", admin), &members)
	assert.Len(t, members, 4)

	// Accounts survive a data reset.
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/auth/user", "", admin).Code)
}

func TestOperationalRoutes(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/ready", "", nil).Code)

	s.do(http.MethodGet, "/api/dashboard/stats", "", nil)
	metrics := s.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `path="/api/dashboard/stats"`)
}

func TestNewRouter_RequiresDeps(t *testing.T) {
	_, err := NewRouter(Deps{})
	assert.Error(t, err)
}
