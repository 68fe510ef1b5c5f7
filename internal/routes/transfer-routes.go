package routes

import (
	"github.com/labstack/echo/v4"

	"property-control/internal/controllers"
)

func runTransferRoutes(secure *echo.Group, ctrl *controllers.TransferController) {
	transfers := secure.Group("/transfers")
	transfers.GET("", ctrl.GetTransfers)
	transfers.GET("/recent", ctrl.GetRecentTransfers)
	transfers.GET("/:id", ctrl.FindTransfer)
	transfers.POST("", ctrl.CreateTransfer)
}
