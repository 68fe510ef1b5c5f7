package routes

import (
	"github.com/labstack/echo/v4"

	"property-control/internal/controllers"
)

func runCategoryRoutes(secure *echo.Group, ctrl *controllers.CategoryController) {
	categories := secure.Group("/categories")
	categories.GET("", ctrl.GetCategories)
	categories.GET("/:id", ctrl.FindCategory)
	categories.POST("", ctrl.CreateCategory)
	categories.PUT("/:id", ctrl.UpdateCategory)
	categories.DELETE("/:id", ctrl.DeleteCategory)
}
