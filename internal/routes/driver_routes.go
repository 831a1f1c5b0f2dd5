package routes

import (
	"github.com/gin-gonic/gin"

	"school_transport/internal/controllers"
)

func DriverRoutes(r *gin.Engine, ctrl *controllers.Controller) {
	drivers := r.Group("/drivers")
	{
		drivers.GET("", ctrl.ListDrivers)
		drivers.POST("", ctrl.CreateDriver)
		drivers.GET("/:id", ctrl.GetDriver)
		drivers.GET("/:id/vehicles", ctrl.ListDriverVehicles)
	}
}
