package routes

import (
	"github.com/gin-gonic/gin"

	"school_transport/internal/controllers"
)

func VehicleRoutes(r *gin.Engine, ctrl *controllers.Controller) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", ctrl.ListVehicles)
		vehicles.POST("", ctrl.CreateVehicle)
	}
}
