package dto

import "time"

type AssetResponseDTO struct {
	Symbol string `json:"symbol" example:"BTC"`
	Name   string `json:"name" example:"Bitcoin"`
	Pair   string `json:"pair" example:"BTCUSDT"`
	Color  string `json:"color" example:"#F7931A"`
}

type CandleResponseDTO struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open" example:"68000.1"`
	High   float64   `json:"high" example:"68012.4"`
	Low    float64   `json:"low" example:"67990.2"`
	Close  float64   `json:"close" example:"68005.7"`
	Volume float64   `json:"volume" example:"120.5"`
}

type SignalResponseDTO struct {
	Type       string `json:"type" example:"BUY"`
	Confidence int    `json:"confidence" example:"82"`
}
