package dto

import "time"

type DepositRequestDTO struct {
	Amount      float64 `json:"amount" example:"100"`
	Destination string  `json:"destination" example:"+254700000000"`
	Country     string  `json:"country,omitempty" example:"Kenya"`
}

type WithdrawRequestDTO struct {
	Amount      float64 `json:"amount" example:"50"`
	Destination string  `json:"destination" example:"+254700000000"`
}

type ExchangeRequestDTO struct {
	GAmount float64 `json:"g_amount" example:"10"`
}

type ExchangeResponseDTO struct {
	GAmount float64 `json:"g_amount" example:"10"`
	USDGain float64 `json:"usd_gain" example:"8.5"`
	Rate    float64 `json:"rate" example:"0.85"`
}

type TransactionResponseDTO struct {
	ID          string    `json:"id" example:"k3j9x2m1q"`
	Type        string    `json:"type" example:"DEPOSIT"`
	Amount      float64   `json:"amount" example:"100"`
	Currency    string    `json:"currency" example:"USD"`
	AccountType string    `json:"account_type" example:"DEMO"`
	Date        time.Time `json:"date" example:"2025-11-09T16:09:57+03:00"`
	Status      string    `json:"status" example:"COMPLETED"`
}
