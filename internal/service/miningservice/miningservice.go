package miningservice

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
	"go.uber.org/zap"
)

type Ledger interface {
	IsMiningSubscribed() bool
	ActiveAccount() domain.AccountType
	Record(txType domain.TransactionType, amount float64, currency domain.Currency, account domain.AccountType) domain.Transaction
}

var (
	ErrNotSubscribed  = errors.New("mining subscription required")
	ErrAlreadyRunning = errors.New("mining already running")
	ErrNotRunning     = errors.New("mining not running")
)

const (
	defaultTick = time.Second
	rewardBase  = 0.005
	rewardSpan  = 0.002
)

// Service accumulates fractional G-Coin rewards while running. The
// accumulator lives outside the balance store until Collect moves it into
// the ledger; rewards still in the accumulator at teardown are lost.
type Service struct {
	mu          sync.Mutex
	ledger      Ledger
	tick        time.Duration
	accumulated float64
	running     bool
	stop        chan struct{}
}

func New(ledger Ledger, tick time.Duration) *Service {
	if tick <= 0 {
		tick = defaultTick
	}
	return &Service{ledger: ledger, tick: tick}
}

// Start enters RUNNING. The subscription latch is checked here only; it
// cannot be revoked mid-run.
func (s *Service) Start() error {
	if !s.ledger.IsMiningSubscribed() {
		return ErrNotSubscribed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrAlreadyRunning
	}
	s.running = true
	s.stop = make(chan struct{})
	go s.run(s.stop)

	zap.L().Info("mining started")
	return nil
}

func (s *Service) run(stop chan struct{}) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.running {
				s.accumulated += rewardBase + rand.Float64()*rewardSpan
			}
			s.mu.Unlock()
		}
	}
}

// Stop halts the ticker without collecting. The accumulator keeps its
// value for a later Collect.
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return ErrNotRunning
	}
	s.halt()
	return nil
}

func (s *Service) halt() {
	s.running = false
	close(s.stop)
	s.stop = nil
}

// Collect moves the accumulator into the ledger as a MINING_REWARD for the
// active account and returns to STOPPED. A zero accumulator still produces
// a zero-amount entry.
func (s *Service) Collect() domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	amount := s.accumulated
	s.accumulated = 0
	if s.running {
		s.halt()
	}
	tx := s.ledger.Record(domain.TxMiningReward, amount, domain.CurrencyGCoin, s.ledger.ActiveAccount())

	zap.L().Info("mining reward collected", zap.Float64("amount", amount))
	return tx
}

func (s *Service) Accumulated() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accumulated
}

func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
