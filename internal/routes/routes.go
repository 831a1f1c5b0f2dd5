package routes

import (
	"io"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"school_transport/internal/controllers"
	"school_transport/internal/middleware"
)

// SetupRouter builds the engine. Request logs are written to logWriter.
func SetupRouter(ctrl *controllers.Controller, logWriter io.Writer) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(ginlog.SetLogger(
		ginlog.WithWriter(logWriter),
		ginlog.WithUTC(true),
		ginlog.WithSkipPath([]string{"/healthz", "/metrics"}),
	))
	r.Use(middleware.Metrics())
	r.Use(gin.Recovery())

	UserRoutes(r, ctrl)
	GuardianRoutes(r, ctrl)
	DriverRoutes(r, ctrl)
	StudentRoutes(r, ctrl)
	VehicleRoutes(r, ctrl)

	r.GET("/healthz", ctrl.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
