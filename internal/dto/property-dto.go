package dto

import "github.com/aarondl/null/v8"

type CreatePropertyDTO struct {
	Name                string     `json:"name" validate:"required"`
	Description         string     `json:"description"`
	CategoryID          null.Int64 `json:"category"`
	DepartmentID        uint64     `json:"department" validate:"required,gt=0"`
	CurrentDepartmentID null.Int64 `json:"current_department"`
	Status              string     `json:"status" validate:"omitempty,oneof=active inactive under_maintenance disposed"`
	PurchaseDate        string     `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	PurchasePrice       float64    `json:"purchase_price" validate:"omitempty,gte=0"`
	CurrentValue        float64    `json:"current_value" validate:"omitempty,gte=0"`
	SerialNumber        string     `json:"serial_number"`
	InventoryNumber     string     `json:"inventory_number"`
	Brand               string     `json:"brand"`
	Model               string     `json:"model"`
}

// UpdatePropertyDTO намеренно не содержит ни code, ни current_department:
// код неизменяем, а текущий держатель меняется только операцией перемещения.
// Ограничение: category можно назначить, но нельзя сбросить в NULL через
// этот запрос - явный null в JSON неотличим от отсутствующего поля.
// Категория обнуляется сама при удалении категории (ON DELETE SET NULL).
type UpdatePropertyDTO struct {
	Name            *string    `json:"name" validate:"omitempty,min=1"`
	Description     *string    `json:"description"`
	CategoryID      null.Int64 `json:"category"`
	DepartmentID    *uint64    `json:"department" validate:"omitempty,gt=0"`
	Status          *string    `json:"status" validate:"omitempty,oneof=active inactive under_maintenance disposed"`
	PurchaseDate    *string    `json:"purchase_date" validate:"omitempty,datetime=2006-01-02"`
	PurchasePrice   *float64   `json:"purchase_price" validate:"omitempty,gte=0"`
	CurrentValue    *float64   `json:"current_value" validate:"omitempty,gte=0"`
	SerialNumber    *string    `json:"serial_number"`
	InventoryNumber *string    `json:"inventory_number"`
	Brand           *string    `json:"brand"`
	Model           *string    `json:"model"`
}

type PropertyDTO struct {
	ID                    uint64     `json:"id"`
	Code                  string     `json:"code"`
	Name                  string     `json:"name"`
	Description           string     `json:"description"`
	CategoryID            null.Int64 `json:"category"`
	CategoryName          *string    `json:"category_name,omitempty"`
	DepartmentID          uint64     `json:"department"`
	DepartmentName        *string    `json:"department_name,omitempty"`
	CurrentDepartmentID   null.Int64 `json:"current_department"`
	CurrentDepartmentName *string    `json:"current_department_name,omitempty"`
	Status                string     `json:"status"`
	PurchaseDate          *string    `json:"purchase_date"`
	PurchasePrice         float64    `json:"purchase_price"`
	CurrentValue          float64    `json:"current_value"`
	SerialNumber          string     `json:"serial_number"`
	InventoryNumber       string     `json:"inventory_number"`
	Brand                 string     `json:"brand"`
	Model                 string     `json:"model"`
	CreatedBy             uint64     `json:"created_by"`
	CreatedByName         *string    `json:"created_by_name,omitempty"`
	CreatedAt             string     `json:"created_at"`
	UpdatedAt             string     `json:"updated_at"`
}
