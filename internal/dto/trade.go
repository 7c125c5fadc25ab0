package dto

import "time"

type PlaceTradeRequestDTO struct {
	Asset     string  `json:"asset" example:"BTC"`
	Direction string  `json:"direction" example:"UP"`
	Amount    float64 `json:"amount" example:"10"`
	Currency  string  `json:"currency" example:"USD"`
}

type PositionResponseDTO struct {
	ID         string    `json:"id" example:"K3J9X2M1QZ"`
	Asset      string    `json:"asset" example:"BTC"`
	Direction  string    `json:"direction" example:"UP"`
	Stake      float64   `json:"stake" example:"10"`
	Currency   string    `json:"currency" example:"USD"`
	Account    string    `json:"account" example:"DEMO"`
	OpenPrice  float64   `json:"open_price" example:"68000.12"`
	ClosePrice float64   `json:"close_price,omitempty" example:"68010.55"`
	State      string    `json:"state" example:"PENDING"`
	OpenedAt   time.Time `json:"opened_at"`
	Payout     float64   `json:"payout" example:"18.5"`
}
