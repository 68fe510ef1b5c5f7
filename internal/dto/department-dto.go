package dto

import "github.com/aarondl/null/v8"

type CreateDepartmentDTO struct {
	Name        string     `json:"name" validate:"required"`
	Code        string     `json:"code" validate:"required,max=10"`
	ManagerID   null.Int64 `json:"manager"`
	Description string     `json:"description"`
}

type UpdateDepartmentDTO struct {
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	Code        *string    `json:"code" validate:"omitempty,min=1,max=10"`
	ManagerID   null.Int64 `json:"manager"`
	Description *string    `json:"description"`
}

type DepartmentDTO struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	ManagerID   null.Int64 `json:"manager"`
	ManagerName *string    `json:"manager_name,omitempty"`
	Description string     `json:"description"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}
