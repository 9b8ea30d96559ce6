package handler

import (
	"errors"
	"net/http"
	"strconv"

	"taskflow/internal/logger"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string               `json:"message"`
	Errors  []service.FieldError `json:"errors,omitempty"`
}

// respondError maps service errors to status codes. Unknown errors are
// logged and reported as a generic 500.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var verr *service.ValidationError
	var nferr *service.NotFoundError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid data", Errors: verr.Errors})
	case errors.As(err, &nferr):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: nferr.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid credentials"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "User not found"})
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated"})
	default:
		log.Errorw("Request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid data", Errors: bindingError(err).Errors})
}

// parseID reads the :id path parameter, writing 400 when it is not a number.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid id"})
		return 0, false
	}
	return id, true
}

// queryInt64 reads an optional integer query parameter.
func queryInt64(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &service.ValidationError{Errors: []service.FieldError{{
			Field:   name,
			Message: name + " must be an integer",
		}}}
	}
	return &v, nil
}
