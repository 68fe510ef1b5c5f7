package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/services"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/utils"
)

type TransferController struct {
	transferService *services.TransferService
	logger          *zap.Logger
}

func NewTransferController(transferService *services.TransferService, logger *zap.Logger) *TransferController {
	return &TransferController{
		transferService: transferService,
		logger:          logger,
	}
}

func (ctrl *TransferController) GetTransfers(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	transfers, total, err := ctrl.transferService.GetTransfers(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, transfers, "История перемещений получена успешно", http.StatusOK, total)
}

// defaultRecentTransfersLimit - сколько перемещений отдаётся, если limit
// не указан или не является корректным числом.
const defaultRecentTransfersLimit = 5

func (ctrl *TransferController) GetRecentTransfers(ctx echo.Context) error {
	limit := defaultRecentTransfersLimit
	if limitStr := ctx.QueryParam("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= utils.MaxLimit {
			limit = l
		}
	}

	transfers, err := ctrl.transferService.GetRecentTransfers(ctx.Request().Context(), limit)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, transfers, "Последние перемещения получены успешно", http.StatusOK)
}

func (ctrl *TransferController) FindTransfer(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный ID перемещения"), ctrl.logger)
	}

	transfer, err := ctrl.transferService.FindTransfer(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, transfer, "Перемещение получено успешно", http.StatusOK)
}

// CreateTransfer - POST /transfers. Альтернативная точка входа той же
// операции перемещения, имущество задаётся в теле запроса.
func (ctrl *TransferController) CreateTransfer(ctx echo.Context) error {
	var payload dto.CreateTransferDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат запроса"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	transfer, err := ctrl.transferService.TransferProperty(ctx.Request().Context(), payload.PropertyID, payload.ToDepartmentID, payload.Notes)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, transfer, "Имущество перемещено успешно", http.StatusCreated)
}
