package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports whether the database answers a ping.
func (h *Controller) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		log(c).WithError(err).Warn("health check: database unreachable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
