package entities

import "property-control/pkg/types"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        uint64 `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	Email     string `json:"email" db:"email"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`

	Password string `json:"-" db:"password"`

	Role         string  `json:"role" db:"role"`
	DepartmentID *uint64 `json:"department_id" db:"department_id"`
	Phone        string  `json:"phone" db:"phone"`
	IsActive     bool    `json:"is_active" db:"is_active"`

	types.BaseEntity
}

// FullName - "Фамилия Имя" для отображения в ответах API.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Username
	case u.LastName == "":
		return u.FirstName
	case u.FirstName == "":
		return u.LastName
	default:
		return u.FirstName + " " + u.LastName
	}
}
