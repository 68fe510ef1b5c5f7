package routes

import (
	"github.com/labstack/echo/v4"

	"property-control/internal/controllers"
)

func runDepartmentRoutes(secure *echo.Group, ctrl *controllers.DepartmentController) {
	departments := secure.Group("/departments")
	departments.GET("", ctrl.GetDepartments)
	departments.GET("/:id", ctrl.FindDepartment)
	departments.POST("", ctrl.CreateDepartment)
	departments.PUT("/:id", ctrl.UpdateDepartment)
	departments.DELETE("/:id", ctrl.DeleteDepartment)
}
