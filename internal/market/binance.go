package market

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nickmuds954-code/Nexus-trade/pkg/clients"
	"github.com/pkg/errors"
)

const tickerRoute = "/api/v3/ticker/24hr?symbol="

// Ticker24h is the slice of the exchange's 24h statistics payload the
// engine cares about. Numeric fields arrive as strings on the wire.
type Ticker24h struct {
	LastPrice          string `json:"lastPrice"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	PriceChangePercent string `json:"priceChangePercent"`
	Volume             string `json:"volume"`
}

func (t *Ticker24h) Last() float64      { return parsePrice(t.LastPrice) }
func (t *Ticker24h) High() float64      { return parsePrice(t.HighPrice) }
func (t *Ticker24h) Low() float64       { return parsePrice(t.LowPrice) }
func (t *Ticker24h) ChangePct() float64 { return parsePrice(t.PriceChangePercent) }
func (t *Ticker24h) Vol() float64       { return parsePrice(t.Volume) }

func parsePrice(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

type TickerClientI interface {
	Ticker24h(pair string) (*Ticker24h, error)
}

// TickerClient fetches seed statistics from the exchange. Failures are
// expected and handled by the engine's static fallback.
type TickerClient struct {
	baseURL string
	client  clients.HTTPClientI
}

func NewTickerClient(baseURL string) *TickerClient {
	return &TickerClient{
		baseURL: baseURL,
		client:  clients.NewHTTPClient(),
	}
}

func (c *TickerClient) Ticker24h(pair string) (*Ticker24h, error) {
	statusCode, body, _, err := c.client.Get(c.baseURL+tickerRoute+pair, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch 24h ticker for %s", pair)
	}
	if statusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d for %s", statusCode, pair)
	}

	var ticker Ticker24h
	if err := json.Unmarshal(body, &ticker); err != nil {
		return nil, errors.Wrapf(err, "decode 24h ticker for %s", pair)
	}
	return &ticker, nil
}
