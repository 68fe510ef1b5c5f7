package dto

import "github.com/aarondl/null/v8"

type CreateUserDTO struct {
	Username     string     `json:"username" validate:"required,min=3"`
	Password     string     `json:"password" validate:"required,min=6"`
	Email        string     `json:"email" validate:"omitempty,email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Role         string     `json:"role" validate:"omitempty,oneof=admin user"`
	DepartmentID null.Int64 `json:"department"`
	Phone        string     `json:"phone"`
}

type UserDTO struct {
	ID           uint64     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Role         string     `json:"role"`
	DepartmentID null.Int64 `json:"department"`
	Phone        string     `json:"phone"`
}
