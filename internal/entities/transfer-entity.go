package entities

import "time"

// PropertyTransfer - неизменяемая запись о перемещении имущества.
// После создания не редактируется и не удаляется.
type PropertyTransfer struct {
	ID               uint64    `json:"id" db:"id"`
	PropertyID       uint64    `json:"property_id" db:"property_id"`
	FromDepartmentID uint64    `json:"from_department_id" db:"from_department_id"`
	ToDepartmentID   uint64    `json:"to_department_id" db:"to_department_id"`
	TransferDate     time.Time `json:"transfer_date" db:"transfer_date"`
	Notes            string    `json:"notes" db:"notes"`
	TransferredBy    uint64    `json:"transferred_by" db:"transferred_by"`

	PropertyName       *string `json:"property_name" db:"property_name"`
	PropertyCode       *string `json:"property_code" db:"property_code"`
	FromDepartmentName *string `json:"from_department_name" db:"from_department_name"`
	ToDepartmentName   *string `json:"to_department_name" db:"to_department_name"`
	TransferredByName  *string `json:"transferred_by_name" db:"transferred_by_name"`
}
