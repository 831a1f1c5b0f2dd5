package routes

import (
	"github.com/gin-gonic/gin"

	"school_transport/internal/controllers"
)

func UserRoutes(r *gin.Engine, ctrl *controllers.Controller) {
	users := r.Group("/users")
	{
		users.GET("", ctrl.ListUsers)
		users.POST("", ctrl.CreateUser)
		users.GET("/:id", ctrl.GetUser)
		users.PUT("/:id/password", ctrl.ChangePassword)
	}
}
