package dto

// TransferPropertyDTO - тело PUT /properties/{id}/transfer.
type TransferPropertyDTO struct {
	DepartmentID uint64 `json:"department" validate:"required,gt=0"`
	Notes        string `json:"notes"`
}

// CreateTransferDTO - тело POST /transfers.
type CreateTransferDTO struct {
	PropertyID     uint64 `json:"property" validate:"required,gt=0"`
	ToDepartmentID uint64 `json:"to_department" validate:"required,gt=0"`
	Notes          string `json:"notes"`
}

type TransferDTO struct {
	ID                 uint64  `json:"id"`
	PropertyID         uint64  `json:"property"`
	PropertyName       *string `json:"property_name,omitempty"`
	PropertyCode       *string `json:"property_code,omitempty"`
	FromDepartmentID   uint64  `json:"from_department"`
	FromDepartmentName *string `json:"from_department_name,omitempty"`
	ToDepartmentID     uint64  `json:"to_department"`
	ToDepartmentName   *string `json:"to_department_name,omitempty"`
	TransferDate       string  `json:"transfer_date"`
	Notes              string  `json:"notes"`
	TransferredBy      uint64  `json:"transferred_by"`
	TransferredByName  *string `json:"transferred_by_name,omitempty"`
}
