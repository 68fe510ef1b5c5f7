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

type CategoryController struct {
	categoryService *services.CategoryService
	logger          *zap.Logger
}

func NewCategoryController(categoryService *services.CategoryService, logger *zap.Logger) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		logger:          logger,
	}
}

func (ctrl *CategoryController) GetCategories(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	categories, total, err := ctrl.categoryService.GetCategories(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, categories, "Список категорий получен успешно", http.StatusOK, total)
}

func (ctrl *CategoryController) FindCategory(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный ID категории"), ctrl.logger)
	}

	category, err := ctrl.categoryService.FindCategory(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, category, "Категория получена успешно", http.StatusOK)
}

func (ctrl *CategoryController) CreateCategory(ctx echo.Context) error {
	var payload dto.CreateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат запроса"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	category, err := ctrl.categoryService.CreateCategory(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, category, "Категория создана успешно", http.StatusCreated)
}

func (ctrl *CategoryController) UpdateCategory(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный ID категории"), ctrl.logger)
	}

	var payload dto.UpdateCategoryDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат запроса"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	category, err := ctrl.categoryService.UpdateCategory(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, category, "Категория обновлена успешно", http.StatusOK)
}

func (ctrl *CategoryController) DeleteCategory(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный ID категории"), ctrl.logger)
	}

	if err := ctrl.categoryService.DeleteCategory(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Категория удалена успешно", http.StatusOK)
}
