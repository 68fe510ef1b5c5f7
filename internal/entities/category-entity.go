package entities

import "property-control/pkg/types"

type Category struct {
	ID          uint64 `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Code        string `json:"code" db:"code"`
	Description string `json:"description" db:"description"`

	types.BaseEntity
}
