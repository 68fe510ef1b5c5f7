package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"property-control/internal/controllers"
	"property-control/internal/repositories"
	"property-control/internal/services"
	"property-control/pkg/middleware"
	"property-control/pkg/service"
)

// InitRouter собирает слои приложения: репозитории -> сервисы ->
// контроллеры, и навешивает маршруты на /api.
func InitRouter(
	e *echo.Echo,
	dbPool *pgxpool.Pool,
	cacheRepository repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) {
	departmentRepository := repositories.NewDepartmentRepository(dbPool, logger)
	categoryRepository := repositories.NewCategoryRepository(dbPool, logger)
	propertyRepository := repositories.NewPropertyRepository(dbPool, logger)
	transferRepository := repositories.NewTransferRepository(dbPool, logger)
	userRepository := repositories.NewUserRepository(dbPool, logger)
	dashboardRepository := repositories.NewDashboardRepository(dbPool, logger)
	txManager := repositories.NewTxManager(dbPool)

	departmentService := services.NewDepartmentService(departmentRepository, logger)
	categoryService := services.NewCategoryService(categoryRepository, logger)
	propertyService := services.NewPropertyService(propertyRepository, logger)
	transferService := services.NewTransferService(transferRepository, propertyRepository, departmentRepository, txManager, logger)
	userService := services.NewUserService(userRepository, logger)
	authService := services.NewAuthService(userRepository, cacheRepository, jwtService, logger)
	dashboardService := services.NewDashboardService(dashboardRepository, transferRepository, logger)

	authController := controllers.NewAuthController(authService, logger)
	departmentController := controllers.NewDepartmentController(departmentService, logger)
	categoryController := controllers.NewCategoryController(categoryService, logger)
	propertyController := controllers.NewPropertyController(propertyService, transferService, logger)
	transferController := controllers.NewTransferController(transferService, logger)
	userController := controllers.NewUserController(userService, logger)
	dashboardController := controllers.NewDashboardController(dashboardService, logger)

	authMW := middleware.NewAuthMiddleware(jwtService, logger)

	api := e.Group("/api")

	// Открытые маршруты: вход и обновление токенов
	api.POST("/auth/login", authController.Login)
	api.POST("/auth/refresh", authController.Refresh)

	secure := api.Group("", authMW.Auth)

	runAuthRoutes(secure, authController)
	runDashboardRoutes(secure, dashboardController)
	runDepartmentRoutes(secure, departmentController)
	runCategoryRoutes(secure, categoryController)
	runPropertyRoutes(secure, propertyController)
	runTransferRoutes(secure, transferController)
	runUserRoutes(secure, userController, authMW)
}
