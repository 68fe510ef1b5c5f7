package routes

import (
	"github.com/labstack/echo/v4"

	"property-control/internal/controllers"
)

func runPropertyRoutes(secure *echo.Group, ctrl *controllers.PropertyController) {
	properties := secure.Group("/properties")
	properties.GET("", ctrl.GetProperties)
	// export раньше /:id, иначе echo примет "export" за ID
	properties.GET("/export", ctrl.ExportProperties)
	properties.GET("/:id", ctrl.FindProperty)
	properties.POST("", ctrl.CreateProperty)
	properties.PUT("/:id", ctrl.UpdateProperty)
	properties.PUT("/:id/transfer", ctrl.TransferProperty)
	properties.DELETE("/:id", ctrl.DeleteProperty)
}
