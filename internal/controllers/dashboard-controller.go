package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"property-control/internal/services"
	"property-control/pkg/utils"
)

type DashboardController struct {
	dashboardService *services.DashboardService
	logger           *zap.Logger
}

func NewDashboardController(dashboardService *services.DashboardService, logger *zap.Logger) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

func (ctrl *DashboardController) GetStats(ctx echo.Context) error {
	stats, err := ctrl.dashboardService.GetStats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, stats, "Сводка получена успешно", http.StatusOK)
}
