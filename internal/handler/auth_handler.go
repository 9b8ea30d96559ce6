package handler

import (
	"errors"
	"net/http"

	"taskflow/internal/logger"
	"taskflow/internal/middleware"
	"taskflow/internal/model"
	"taskflow/internal/service"
	"taskflow/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
	log      *logger.Logger
}

func NewAuthHandler(auth *service.AuthService, sessions *session.Manager, log *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, log: log.WithComponent("auth_handler")}
}

// LoginRequest carries credentials. Presence is checked by the service so
// that both missing fields are reported together.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	User model.PublicUser `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Login godoc
// @Summary      Log in with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  UserResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      401          {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.log.LogSecurityEvent("login_failed", "", c.ClientIP(), map[string]interface{}{
				"username": req.Username,
			})
		}
		respondError(c, h.log, err)
		return
	}

	if _, err := h.sessions.Start(c, session.Data{UserID: user.ID, UserRole: user.Role}); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Infow("User logged in", "user_id", user.ID, "role", user.Role)
	c.JSON(http.StatusOK, UserResponse{User: user.Public()})
}

// Guest godoc
// @Summary      Start a guest session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  UserResponse
// @Router       /auth/guest [post]
func (h *AuthHandler) Guest(c *gin.Context) {
	data := session.Data{UserID: model.GuestUserID, UserRole: model.RoleGuest}
	if _, err := h.sessions.Start(c, data); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, UserResponse{User: model.GuestUser()})
}

// Logout godoc
// @Summary      Destroy the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess != nil {
		if err := h.sessions.Destroy(c, sess.ID); err != nil {
			h.log.Errorw("Failed to destroy session", "error", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Logout failed"})
			return
		}
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// CurrentUser godoc
// @Summary      Get the signed-in user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  model.PublicUser
// @Failure      401  {object}  ErrorResponse
// @Router       /auth/user [get]
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, err := h.auth.CurrentUser(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
