package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"property-control/internal/dto"
	"property-control/internal/services"
	apperrors "property-control/pkg/errors"
	"property-control/pkg/utils"
)

type PropertyController struct {
	propertyService *services.PropertyService
	transferService *services.TransferService
	logger          *zap.Logger
}

func NewPropertyController(
	propertyService *services.PropertyService,
	transferService *services.TransferService,
	logger *zap.Logger,
) *PropertyController {
	return &PropertyController{
		propertyService: propertyService,
		transferService: transferService,
		logger:          logger,
	}
}

func (ctrl *PropertyController) GetProperties(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	properties, total, err := ctrl.propertyService.GetProperties(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, properties, "Список имущества получен успешно", http.StatusOK, total)
}

func (ctrl *PropertyController) FindProperty(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный ID имущества"), ctrl.logger)
	}

	property, err := ctrl.propertyService.FindProperty(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, property, "Имущество получено успешно", http.StatusOK)
}

func (ctrl *PropertyController) CreateProperty(ctx echo.Context) error {
	var payload dto.CreatePropertyDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат запроса"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	property, err := ctrl.propertyService.CreateProperty(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, property, "Имущество создано успешно", http.StatusCreated)
}

func (ctrl *PropertyController) UpdateProperty(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный ID имущества"), ctrl.logger)
	}

	var payload dto.UpdatePropertyDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат запроса"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	property, err := ctrl.propertyService.UpdateProperty(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, property, "Имущество обновлено успешно", http.StatusOK)
}

func (ctrl *PropertyController) DeleteProperty(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный ID имущества"), ctrl.logger)
	}

	if err := ctrl.propertyService.DeleteProperty(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Имущество удалено успешно", http.StatusOK)
}

// TransferProperty - PUT /properties/:id/transfer. Та же операция, что и
// POST /transfers, но имущество задаётся параметром пути.
func (ctrl *PropertyController) TransferProperty(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный ID имущества"), ctrl.logger)
	}

	var payload dto.TransferPropertyDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат запроса"), ctrl.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}

	transfer, err := ctrl.transferService.TransferProperty(ctx.Request().Context(), id, payload.DepartmentID, payload.Notes)
	if err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	return utils.SuccessResponse(ctx, transfer, "Имущество перемещено успешно", http.StatusOK)
}

var propertyReportHeader = []interface{}{
	"Код", "Наименование", "Категория", "Департамент-владелец",
	"Текущий департамент", "Статус", "Дата покупки", "Цена покупки",
	"Текущая стоимость", "Серийный номер", "Инвентарный номер",
}

// ExportProperties выгружает реестр имущества в xlsx с учётом тех же
// параметров поиска и фильтрации, что и у списка.
func (ctrl *PropertyController) ExportProperties(ctx echo.Context) error {
	if format := ctx.QueryParam("format"); format != "" && format != "xlsx" {
		return utils.ErrorResponse(ctx, apperrors.NewBadRequestError("Поддерживается только формат xlsx"), ctrl.logger)
	}

	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())
	filter.WithPagination = true
	filter.Limit = utils.MaxLimit
	filter.Offset = 0

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(sheet, 1, 1, headerStyle)
	}
	if err := f.SetSheetRow(sheet, "A1", &propertyReportHeader); err != nil {
		return utils.ErrorResponse(ctx, err, ctrl.logger)
	}
	_ = f.SetColWidth(sheet, "A", "K", 22)

	// Выгрузка идёт страницами, чтобы отчёт содержал весь реестр,
	// а не первые utils.MaxLimit записей.
	rowNum := 2
	for {
		properties, total, err := ctrl.propertyService.GetProperties(ctx.Request().Context(), filter)
		if err != nil {
			return utils.ErrorResponse(ctx, err, ctrl.logger)
		}

		for _, p := range properties {
			row := []interface{}{
				p.Code,
				p.Name,
				derefOrDash(p.CategoryName),
				derefOrDash(p.DepartmentName),
				derefOrDash(p.CurrentDepartmentName),
				p.Status,
				derefOrDash(p.PurchaseDate),
				p.PurchasePrice,
				p.CurrentValue,
				p.SerialNumber,
				p.InventoryNumber,
			}
			cell := fmt.Sprintf("A%d", rowNum)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return utils.ErrorResponse(ctx, err, ctrl.logger)
			}
			rowNum++
		}

		filter.Offset += len(properties)
		if len(properties) == 0 || uint64(filter.Offset) >= total {
			break
		}
	}

	filename := fmt.Sprintf("properties_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func derefOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
