package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"school_transport/internal/middleware"
	"school_transport/internal/models"
	"school_transport/internal/password"
	"school_transport/internal/repository"
	"school_transport/internal/schemas"
)

// Controller holds the handles every handler needs. It is built once by the
// entry point.
type Controller struct {
	store  *repository.Store
	hasher password.Hasher
}

func New(store *repository.Store, hasher password.Hasher) *Controller {
	return &Controller{store: store, hasher: hasher}
}

// log returns a logrus entry tagged with the request id.
func log(c *gin.Context) *logrus.Entry {
	return logrus.WithField("request_id", c.GetString(middleware.RequestIDKey))
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format."})
		return 0, false
	}
	return uint(id), true
}

// respondError maps schema, model and store errors onto HTTP statuses.
func respondError(c *gin.Context, err error, action string) {
	var verr *schemas.ValidationError
	var valueErr *models.ValueError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.As(err, &valueErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid value",
			"fields": gin.H{valueErr.Field: []string{valueErr.Err.Error()}},
		})
	case errors.Is(err, repository.ErrParentNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": action + ": not found"})
	case errors.Is(err, repository.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log(c).WithError(err).Error(action + " failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not " + action})
	}
}
