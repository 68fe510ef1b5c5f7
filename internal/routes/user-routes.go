package routes

import (
	"github.com/labstack/echo/v4"

	"property-control/internal/controllers"
	"property-control/pkg/middleware"
)

// Список пользователей открыт любому авторизованному, создание - только
// администраторам.
func runUserRoutes(secure *echo.Group, ctrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	admin := secure.Group("/admin")
	admin.GET("/users", ctrl.GetUsers)
	admin.GET("/users/:id", ctrl.FindUser)
	admin.POST("/users", ctrl.CreateUser, authMW.RequireAdmin)
}
