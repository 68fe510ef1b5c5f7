package routes

import (
	"github.com/labstack/echo/v4"

	"property-control/internal/controllers"
)

func runAuthRoutes(secure *echo.Group, ctrl *controllers.AuthController) {
	secure.POST("/auth/logout", ctrl.Logout)
	secure.GET("/auth/profile", ctrl.GetProfile)
}
