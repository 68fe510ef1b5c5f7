package routes

import (
	"github.com/labstack/echo/v4"

	"property-control/internal/controllers"
)

func runDashboardRoutes(secure *echo.Group, ctrl *controllers.DashboardController) {
	secure.GET("/dashboard/stats", ctrl.GetStats)
}
