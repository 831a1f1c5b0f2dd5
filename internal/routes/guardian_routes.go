package routes

import (
	"github.com/gin-gonic/gin"

	"school_transport/internal/controllers"
)

func GuardianRoutes(r *gin.Engine, ctrl *controllers.Controller) {
	guardians := r.Group("/guardians")
	{
		guardians.GET("", ctrl.ListGuardians)
		guardians.POST("", ctrl.CreateGuardian)
		guardians.GET("/:id", ctrl.GetGuardian)
		guardians.GET("/:id/students", ctrl.ListGuardianStudents)
	}
}
