package entities

import (
	"time"

	"property-control/pkg/types"
)

const (
	PropertyStatusActive           = "active"
	PropertyStatusInactive         = "inactive"
	PropertyStatusUnderMaintenance = "under_maintenance"
	PropertyStatusDisposed         = "disposed"
)

// Property - единица имущества. DepartmentID - департамент-владелец,
// CurrentDepartmentID - департамент, у которого имущество находится сейчас.
// Code генерируется один раз при создании и больше не меняется.
type Property struct {
	ID          uint64 `json:"id" db:"id"`
	Code        string `json:"code" db:"code"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`

	CategoryID          *uint64 `json:"category_id" db:"category_id"`
	DepartmentID        uint64  `json:"department_id" db:"department_id"`
	CurrentDepartmentID *uint64 `json:"current_department_id" db:"current_department_id"`

	Status        string     `json:"status" db:"status"`
	PurchaseDate  *time.Time `json:"purchase_date" db:"purchase_date"`
	PurchasePrice float64    `json:"purchase_price" db:"purchase_price"`
	CurrentValue  float64    `json:"current_value" db:"current_value"`

	SerialNumber    string `json:"serial_number" db:"serial_number"`
	InventoryNumber string `json:"inventory_number" db:"inventory_number"`
	Brand           string `json:"brand" db:"brand"`
	Model           string `json:"model" db:"model"`

	CreatedBy uint64 `json:"created_by" db:"created_by"`

	// Имена связанных записей, подтягиваются JOIN-ами для ответов API
	CategoryName          *string `json:"category_name" db:"category_name"`
	DepartmentName        *string `json:"department_name" db:"department_name"`
	CurrentDepartmentName *string `json:"current_department_name" db:"current_department_name"`
	CreatedByName         *string `json:"created_by_name" db:"created_by_name"`

	types.BaseEntity
}
