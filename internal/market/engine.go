package market

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	historySize   = 40
	candleTick    = time.Second
	signalTick    = 8 * time.Second
	volatilityPct = 0.0005
	wickSpan      = 0.3
	maxTickVolume = 200
)

var ErrUnknownSymbol = errors.New("unknown symbol")

type assetState struct {
	asset   domain.Asset
	candles []domain.Candle
	stats   domain.MarketStats
	signal  domain.Signal
}

// Engine maintains a simulated price series per supported asset: a random
// walk seeded from the live 24h ticker, advancing one candle per second.
// It is the trade service's price source.
type Engine struct {
	mu     sync.RWMutex
	assets map[string]*assetState
	client TickerClientI
}

func New(client TickerClientI) *Engine {
	assets := make(map[string]*assetState, len(domain.SupportedAssets))
	for _, a := range domain.SupportedAssets {
		assets[a.Symbol] = &assetState{
			asset:  a,
			signal: domain.Signal{Type: domain.SignalNeutral},
		}
	}
	return &Engine{assets: assets, client: client}
}

func (e *Engine) Start(ctx context.Context) {
	zap.L().Info("Market engine started")
	e.seed(ctx)
	go e.run(ctx)
}

func (e *Engine) seed(ctx context.Context) {
	var g errgroup.Group
	for symbol := range e.assets {
		symbol := symbol
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				e.seedAsset(symbol)
				return nil
			}
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Market seeding interrupted", zap.Error(err))
	}
}

func (e *Engine) seedAsset(symbol string) {
	e.mu.RLock()
	asset := e.assets[symbol].asset
	e.mu.RUnlock()

	price := asset.Fallback
	var stats domain.MarketStats
	ticker, err := e.client.Ticker24h(asset.Pair)
	if err != nil {
		zap.L().Warn("Ticker fetch failed, using fallback price",
			zap.String("symbol", symbol), zap.Error(err))
	} else {
		price = ticker.Last()
		stats = domain.MarketStats{
			High:      ticker.High(),
			Low:       ticker.Low(),
			ChangePct: ticker.ChangePct(),
			Volume:    ticker.Vol(),
		}
	}

	now := time.Now()
	candles := make([]domain.Candle, 0, historySize)
	current := price
	for i := 0; i < historySize; i++ {
		candle := generateCandle(current, now.Add(-time.Duration(historySize-i)*candleTick))
		candles = append(candles, candle)
		current = candle.Close
	}

	e.mu.Lock()
	state := e.assets[symbol]
	state.candles = candles
	state.stats = stats
	e.mu.Unlock()
}

func (e *Engine) run(ctx context.Context) {
	candles := time.NewTicker(candleTick)
	signals := time.NewTicker(signalTick)
	defer candles.Stop()
	defer signals.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping market engine")
			return
		case <-candles.C:
			e.advance()
		case <-signals.C:
			e.refreshSignals()
		}
	}
}

func (e *Engine) advance() {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := time.Now()
	for _, state := range e.assets {
		if len(state.candles) == 0 {
			continue
		}
		last := state.candles[len(state.candles)-1]
		next := generateCandle(last.Close, now)
		state.candles = append(state.candles[1:], next)
	}
}

func (e *Engine) refreshSignals() {
	types := []domain.SignalType{domain.SignalBuy, domain.SignalSell, domain.SignalNeutral}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, state := range e.assets {
		state.signal = domain.Signal{
			Type:       types[rand.Intn(len(types))],
			Confidence: 60 + rand.Intn(40),
		}
	}
}

func generateCandle(prevClose float64, at time.Time) domain.Candle {
	volatility := prevClose * volatilityPct
	open := prevClose
	closePrice := open + (rand.Float64()-0.5)*volatility
	high := max(open, closePrice) + rand.Float64()*volatility*wickSpan
	low := min(open, closePrice) - rand.Float64()*volatility*wickSpan
	return domain.Candle{
		Time:   at,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  closePrice,
		Volume: rand.Float64() * maxTickVolume,
	}
}

// LastPrice implements the trade service's price source.
func (e *Engine) LastPrice(symbol string) (float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	state, ok := e.assets[symbol]
	if !ok || len(state.candles) == 0 {
		return 0, ErrUnknownSymbol
	}
	return state.candles[len(state.candles)-1].Close, nil
}

func (e *Engine) Candles(symbol string) ([]domain.Candle, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	state, ok := e.assets[symbol]
	if !ok {
		return nil, ErrUnknownSymbol
	}
	out := make([]domain.Candle, len(state.candles))
	copy(out, state.candles)
	return out, nil
}

func (e *Engine) Stats(symbol string) (domain.MarketStats, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	state, ok := e.assets[symbol]
	if !ok {
		return domain.MarketStats{}, ErrUnknownSymbol
	}
	return state.stats, nil
}

func (e *Engine) Signal(symbol string) (domain.Signal, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	state, ok := e.assets[symbol]
	if !ok {
		return domain.Signal{}, ErrUnknownSymbol
	}
	return state.signal, nil
}
