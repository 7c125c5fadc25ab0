package trading

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
	"github.com/nickmuds954-code/Nexus-trade/internal/dto"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/ledgerservice"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/tradeservice"
)

type stubPrices struct {
	price float64
}

func (p *stubPrices) LastPrice(symbol string) (float64, error) {
	return p.price, nil
}

type stubMarket struct {
	candles []domain.Candle
	signal  domain.Signal
}

func (m *stubMarket) Candles(symbol string) ([]domain.Candle, error) {
	if symbol != "BTC" {
		return nil, assert.AnError
	}
	return m.candles, nil
}

func (m *stubMarket) Stats(symbol string) (domain.MarketStats, error) {
	if symbol != "BTC" {
		return domain.MarketStats{}, assert.AnError
	}
	return domain.MarketStats{}, nil
}

func (m *stubMarket) Signal(symbol string) (domain.Signal, error) {
	if symbol != "BTC" {
		return domain.Signal{}, assert.AnError
	}
	return m.signal, nil
}

func newHandler(t *testing.T) (*TradingHandler, *stubMarket) {
	t.Helper()
	ledger := ledgerservice.New()
	trade := tradeservice.New(ledger, &stubPrices{price: 68000}, tradeservice.WithSettleDelay(time.Hour))
	market := &stubMarket{
		candles: []domain.Candle{{Open: 68000, Close: 68010, High: 68020, Low: 67990, Time: time.Now()}},
		signal:  domain.Signal{Type: domain.SignalBuy, Confidence: 87},
	}
	return New(trade, market), market
}

func TestPlaceHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedCode  int
		expectedError string
	}{
		{
			name:         "Successful contract",
			body:         `{"asset":"BTC","direction":"UP","amount":10}`,
			expectedCode: http.StatusOK,
		},
		{
			name:          "Unknown asset",
			body:          `{"asset":"SHIB","direction":"UP","amount":10}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "unknown asset",
		},
		{
			name:          "Invalid stake",
			body:          `{"asset":"BTC","direction":"UP","amount":0}`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid stake",
		},
		{
			name:          "Stake exceeds balance",
			body:          `{"asset":"BTC","direction":"UP","amount":99999}`,
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient funds",
		},
		{
			name:          "Invalid request body",
			body:          `{"asset":`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newHandler(t)

			r := httptest.NewRequest(http.MethodPost, "/trade", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Place(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
				return
			}
			var body dto.PositionResponseDTO
			_ = json.NewDecoder(w.Body).Decode(&body)
			assert.Equal(t, "BTC", body.Asset)
			assert.Equal(t, "PENDING", body.State)
			assert.Equal(t, "USD", body.Currency, "currency defaults to USD")
			assert.Equal(t, 68000.0, body.OpenPrice)
		})
	}
}

func TestPlaceHandlerWhilePending(t *testing.T) {
	handler, _ := newHandler(t)
	body := `{"asset":"BTC","direction":"UP","amount":10}`

	w := httptest.NewRecorder()
	handler.Place(w, httptest.NewRequest(http.MethodPost, "/trade", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.Place(w, httptest.NewRequest(http.MethodPost, "/trade", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "trade already in progress")
}

func TestGetPositionHandler(t *testing.T) {
	handler, _ := newHandler(t)

	w := httptest.NewRecorder()
	handler.GetPosition(w, httptest.NewRequest(http.MethodGet, "/trade/position", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no contract yet")

	body := `{"asset":"ETH","direction":"DOWN","amount":25}`
	w = httptest.NewRecorder()
	handler.Place(w, httptest.NewRequest(http.MethodPost, "/trade", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.GetPosition(w, httptest.NewRequest(http.MethodGet, "/trade/position", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var pos dto.PositionResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&pos)
	assert.Equal(t, "ETH", pos.Asset)
	assert.Equal(t, "DOWN", pos.Direction)
	assert.Equal(t, 25.0, pos.Stake)
}

func TestGetAssetsHandler(t *testing.T) {
	handler, _ := newHandler(t)

	w := httptest.NewRecorder()
	handler.GetAssets(w, httptest.NewRequest(http.MethodGet, "/market/assets", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var assets []dto.AssetResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&assets))
	require.Len(t, assets, len(domain.SupportedAssets))
	assert.Equal(t, "BTC", assets[0].Symbol)
	assert.Equal(t, "BTCUSDT", assets[0].Pair)
}

func TestGetCandlesHandler(t *testing.T) {
	handler, _ := newHandler(t)
	router := chi.NewRouter()
	router.Get("/market/{symbol}/candles", handler.GetCandles)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/market/BTC/candles", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var candles []dto.CandleResponseDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&candles))
	require.Len(t, candles, 1)
	assert.Equal(t, 68010.0, candles[0].Close)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/market/SHIB/candles", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSignalHandler(t *testing.T) {
	handler, _ := newHandler(t)
	router := chi.NewRouter()
	router.Get("/market/{symbol}/signal", handler.GetSignal)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/market/BTC/signal", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var signal dto.SignalResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&signal)
	assert.Equal(t, "BUY", signal.Type)
	assert.Equal(t, 87, signal.Confidence)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/market/SHIB/signal", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
