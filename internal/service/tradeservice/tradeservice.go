package tradeservice

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
	"github.com/nickmuds954-code/Nexus-trade/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=tradeservice.go -destination=tradeservice_mock.go -package=tradeservice

// PriceSource supplies the reference prices captured at contract entry and
// at delay expiry. The market engine implements it in production; tests
// inject deterministic sequences.
type PriceSource interface {
	LastPrice(symbol string) (float64, error)
}

type Ledger interface {
	ActiveAccount() domain.AccountType
	ActiveBalance(currency domain.Currency) float64
	Record(txType domain.TransactionType, amount float64, currency domain.Currency, account domain.AccountType) domain.Transaction
}

var (
	ErrTradeInProgress   = errors.New("trade already in progress")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidStake      = errors.New("invalid stake")
	ErrUnknownAsset      = errors.New("unknown asset")
	ErrPriceUnavailable  = errors.New("price unavailable")
)

const (
	defaultPayoutRate  = 0.85
	defaultSettleDelay = 3 * time.Second
	forcedWinThreshold = 4
)

type Option func(*Service)

func WithSettleDelay(d time.Duration) Option {
	return func(s *Service) { s.delay = d }
}

func WithPayoutRate(rate float64) Option {
	return func(s *Service) { s.payoutRate = rate }
}

// Service runs the per-contract lifecycle IDLE -> PENDING -> SETTLED ->
// IDLE. At most one contract is open at a time; a pending contract always
// runs its delay to completion, there is no cancel.
type Service struct {
	mu         sync.Mutex
	ledger     Ledger
	prices     PriceSource
	payoutRate float64
	delay      time.Duration
	current    *domain.Position
	lossStreak int
}

func New(ledger Ledger, prices PriceSource, opts ...Option) *Service {
	s := &Service{
		ledger:     ledger,
		prices:     prices,
		payoutRate: defaultPayoutRate,
		delay:      defaultSettleDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Place opens a contract against the active account and starts the
// settlement timer. The stake is not debited up front; settlement applies
// the full win credit or loss debit.
func (s *Service) Place(asset string, direction domain.Direction, stake float64, currency domain.Currency) (domain.Position, error) {
	if direction != domain.DirectionUp && direction != domain.DirectionDown {
		return domain.Position{}, ErrInvalidStake
	}
	if stake <= 0 {
		return domain.Position{}, ErrInvalidStake
	}
	if _, ok := domain.FindAsset(asset); !ok {
		return domain.Position{}, ErrUnknownAsset
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.State == domain.PositionPending {
		return domain.Position{}, ErrTradeInProgress
	}
	if stake > s.ledger.ActiveBalance(currency) {
		return domain.Position{}, ErrInsufficientFunds
	}

	open, err := s.prices.LastPrice(asset)
	if err != nil {
		return domain.Position{}, ErrPriceUnavailable
	}

	pos := &domain.Position{
		ID:        strings.ToUpper(utils.NewID(10)),
		Asset:     asset,
		Direction: direction,
		Stake:     stake,
		Currency:  currency,
		Account:   s.ledger.ActiveAccount(),
		OpenPrice: open,
		State:     domain.PositionPending,
		OpenedAt:  time.Now(),
	}
	s.current = pos

	go s.settleAfter(s.delay)

	zap.L().Info("contract opened",
		zap.String("id", pos.ID),
		zap.String("asset", asset),
		zap.String("direction", string(direction)),
		zap.Float64("stake", stake))
	return *pos, nil
}

func (s *Service) settleAfter(d time.Duration) {
	timer := time.NewTimer(d)
	<-timer.C
	s.settle()
}

func (s *Service) settle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.current
	if pos == nil || pos.State != domain.PositionPending {
		return
	}

	end, err := s.prices.LastPrice(pos.Asset)
	if err != nil {
		// A feed failure must not corrupt the core; an unchanged price
		// settles as a natural loss for either direction.
		zap.L().Warn("price unavailable at settlement, using open price", zap.Error(err))
		end = pos.OpenPrice
	}

	win := pos.Direction == domain.DirectionUp && end > pos.OpenPrice ||
		pos.Direction == domain.DirectionDown && end < pos.OpenPrice

	forced := false
	if s.lossStreak >= forcedWinThreshold {
		win = true
		forced = true
		s.lossStreak = 0
	} else if win {
		s.lossStreak = 0
	} else {
		s.lossStreak++
	}

	pos.ClosePrice = end
	pos.SettledAt = time.Now()
	if win {
		profit := pos.Stake * s.payoutRate
		s.ledger.Record(domain.TxTradeWin, profit, pos.Currency, pos.Account)
		pos.State = domain.PositionWon
		pos.Payout = pos.Stake + profit
	} else {
		s.ledger.Record(domain.TxTradeLoss, -pos.Stake, pos.Currency, pos.Account)
		pos.State = domain.PositionLost
	}

	zap.L().Info("contract settled",
		zap.String("id", pos.ID),
		zap.String("state", string(pos.State)),
		zap.Bool("forced", forced),
		zap.Int("loss_streak", s.lossStreak))
}

// Position returns the most recent contract, pending or settled.
func (s *Service) Position() (domain.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.Position{}, false
	}
	return *s.current, true
}

func (s *Service) LossStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lossStreak
}
