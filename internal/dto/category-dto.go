package dto

type CreateCategoryDTO struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required,max=10"`
	Description string `json:"description"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Code        *string `json:"code" validate:"omitempty,min=1,max=10"`
	Description *string `json:"description"`
}

type CategoryDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
