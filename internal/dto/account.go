package dto

type SwitchAccountRequestDTO struct {
	Account string `json:"account" example:"REAL"`
}

type BalancesResponseDTO struct {
	Active           string  `json:"active" example:"DEMO"`
	USDDemo          float64 `json:"usd_demo" example:"10000"`
	USDReal          float64 `json:"usd_real" example:"0"`
	GCoinDemo        float64 `json:"gcoin_demo" example:"0"`
	GCoinReal        float64 `json:"gcoin_real" example:"0"`
	ActiveUSD        float64 `json:"active_usd" example:"10000"`
	ActiveGCoin      float64 `json:"active_gcoin" example:"0"`
	MiningSubscribed bool    `json:"mining_subscribed" example:"false"`
}
