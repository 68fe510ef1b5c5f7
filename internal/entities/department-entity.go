package entities

import "property-control/pkg/types"

type Department struct {
	ID          uint64  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Code        string  `json:"code" db:"code"`
	ManagerID   *uint64 `json:"manager_id" db:"manager_id"`
	ManagerName *string `json:"manager_name" db:"manager_name"`
	Description string  `json:"description" db:"description"`

	types.BaseEntity
}
