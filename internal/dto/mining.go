package dto

type SubscribeMiningRequestDTO struct {
	Mobile string `json:"mobile" example:"0700000000"`
}

type MiningStatusResponseDTO struct {
	Subscribed  bool    `json:"subscribed" example:"true"`
	Running     bool    `json:"running" example:"true"`
	Accumulated float64 `json:"accumulated" example:"0.0123"`
}
