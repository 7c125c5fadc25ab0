package trading

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
	"github.com/nickmuds954-code/Nexus-trade/internal/dto"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/tradeservice"
	"github.com/nickmuds954-code/Nexus-trade/pkg/utils"
)

type Service interface {
	Place(asset string, direction domain.Direction, stake float64, currency domain.Currency) (domain.Position, error)
	Position() (domain.Position, bool)
}

type Market interface {
	Candles(symbol string) ([]domain.Candle, error)
	Stats(symbol string) (domain.MarketStats, error)
	Signal(symbol string) (domain.Signal, error)
}

type TradingHandler struct {
	tradeService Service
	market       Market
}

func New(tradeService Service, market Market) *TradingHandler {
	return &TradingHandler{
		tradeService: tradeService,
		market:       market,
	}
}

// Place godoc
//
//	@Summary	Open a fixed-delay contract on the active account
//	@Tags		Trading
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.PlaceTradeRequestDTO	true	"Contract payload"
//	@Success	200		{object}	dto.PositionResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid stake or asset"
//	@Failure	402		{object}	utils.Response	"Insufficient funds"
//	@Failure	409		{object}	utils.Response	"Contract already pending"
//	@Router		/api/trade [post]
func (h *TradingHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceTradeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	currency := domain.Currency(req.Currency)
	if currency == "" {
		currency = domain.CurrencyUSD
	}

	pos, err := h.tradeService.Place(req.Asset, domain.Direction(req.Direction), req.Amount, currency)
	if err != nil {
		switch {
		case errors.Is(err, tradeservice.ErrTradeInProgress):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, tradeservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, tradeservice.ErrInvalidStake), errors.Is(err, tradeservice.ErrUnknownAsset):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPositionDTO(pos))
}

// GetPosition godoc
//
//	@Summary	The most recent contract, pending or settled
//	@Tags		Trading
//	@Produce	json
//	@Success	200	{object}	dto.PositionResponseDTO
//	@Failure	404	{object}	utils.Response	"No contract yet"
//	@Router		/api/trade/position [get]
func (h *TradingHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	pos, ok := h.tradeService.Position()
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "no contract yet")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPositionDTO(pos))
}

// GetAssets godoc
//
//	@Summary	Supported assets
//	@Tags		Market
//	@Produce	json
//	@Success	200	{array}	dto.AssetResponseDTO
//	@Router		/api/market/assets [get]
func (h *TradingHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	response := make([]dto.AssetResponseDTO, len(domain.SupportedAssets))
	for i, a := range domain.SupportedAssets {
		response[i] = dto.AssetResponseDTO{
			Symbol: a.Symbol,
			Name:   a.Name,
			Pair:   a.Pair,
			Color:  a.Color,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetCandles godoc
//
//	@Summary	Candle history for one asset
//	@Tags		Market
//	@Produce	json
//	@Param		symbol	path		string	true	"Asset symbol"
//	@Success	200		{array}		dto.CandleResponseDTO
//	@Failure	404		{object}	utils.Response	"Unknown symbol"
//	@Router		/api/market/{symbol}/candles [get]
func (h *TradingHandler) GetCandles(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	candles, err := h.market.Candles(symbol)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	response := make([]dto.CandleResponseDTO, len(candles))
	for i, c := range candles {
		response[i] = dto.CandleResponseDTO{
			Time:   c.Time,
			Open:   c.Open,
			High:   c.High,
			Low:    c.Low,
			Close:  c.Close,
			Volume: c.Volume,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetSignal godoc
//
//	@Summary	Current advisory signal for one asset
//	@Tags		Market
//	@Produce	json
//	@Param		symbol	path		string	true	"Asset symbol"
//	@Success	200		{object}	dto.SignalResponseDTO
//	@Failure	404		{object}	utils.Response	"Unknown symbol"
//	@Router		/api/market/{symbol}/signal [get]
func (h *TradingHandler) GetSignal(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	signal, err := h.market.Signal(symbol)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SignalResponseDTO{
		Type:       string(signal.Type),
		Confidence: signal.Confidence,
	})
}

func toPositionDTO(pos domain.Position) dto.PositionResponseDTO {
	return dto.PositionResponseDTO{
		ID:         pos.ID,
		Asset:      pos.Asset,
		Direction:  string(pos.Direction),
		Stake:      pos.Stake,
		Currency:   string(pos.Currency),
		Account:    string(pos.Account),
		OpenPrice:  pos.OpenPrice,
		ClosePrice: pos.ClosePrice,
		State:      string(pos.State),
		OpenedAt:   pos.OpenedAt,
		Payout:     pos.Payout,
	}
}
