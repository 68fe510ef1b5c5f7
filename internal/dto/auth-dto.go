package dto

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh" validate:"required"`
}

type AuthResponseDTO struct {
	AccessToken  string  `json:"access"`
	RefreshToken string  `json:"refresh"`
	User         UserDTO `json:"user"`
}
