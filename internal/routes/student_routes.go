package routes

import (
	"github.com/gin-gonic/gin"

	"school_transport/internal/controllers"
)

func StudentRoutes(r *gin.Engine, ctrl *controllers.Controller) {
	students := r.Group("/students")
	{
		students.GET("", ctrl.ListStudents)
		students.POST("", ctrl.CreateStudent)
	}
}
