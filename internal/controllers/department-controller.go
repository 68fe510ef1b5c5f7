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

type DepartmentController struct {
	departmentService *services.DepartmentService
	logger            *zap.Logger
}

func NewDepartmentController(departmentService *services.DepartmentService, logger *zap.Logger) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		logger:            logger,
	}
}

func (ctrl *DepartmentController) GetDepartments(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	departments, total, err := ctrl.departmentService.GetDepartments(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, departments, "Список департаментов получен успешно", http.StatusOK, total)
}

func (ctrl *DepartmentController) FindDepartment(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный ID департамента"), ctrl.logger)
	}

	department, err := ctrl.departmentService.FindDepartment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, department, "Департамент получен успешно", http.StatusOK)
}

func (ctrl *DepartmentController) CreateDepartment(ctx echo.Context) error {
	var payload dto.CreateDepartmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат запроса"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	department, err := ctrl.departmentService.CreateDepartment(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, department, "Департамент создан успешно", http.StatusCreated)
}

func (ctrl *DepartmentController) UpdateDepartment(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный ID департамента"), ctrl.logger)
	}

	var payload dto.UpdateDepartmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат запроса"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	department, err := ctrl.departmentService.UpdateDepartment(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, department, "Департамент обновлён успешно", http.StatusOK)
}

func (ctrl *DepartmentController) DeleteDepartment(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный ID департамента"), ctrl.logger)
	}

	if err := ctrl.departmentService.DeleteDepartment(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Департамент удалён успешно", http.StatusOK)
}
