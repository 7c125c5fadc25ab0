package dto

type VaultRequestDTO struct {
	Passcode string `json:"passcode" example:"0000000000"`
}

type VaultFundsResponseDTO struct {
	Funds float64 `json:"funds" example:"3"`
}

type VaultWithdrawResponseDTO struct {
	Amount      float64 `json:"amount" example:"3"`
	Destination string  `json:"destination" example:"0700000000"`
}
