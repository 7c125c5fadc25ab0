package dto

type UpdateProfileRequestDTO struct {
	Name   string `json:"name" example:"Jane Trader"`
	Email  string `json:"email" example:"jane@example.com"`
	Mobile string `json:"mobile,omitempty" example:"0700000000"`
}

type ProfileResponseDTO struct {
	Name     string `json:"name" example:"Jane Trader"`
	Email    string `json:"email" example:"jane@example.com"`
	Mobile   string `json:"mobile" example:"0700000000"`
	Verified bool   `json:"verified" example:"true"`
}
