package ledgerservice

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
	"github.com/nickmuds954-code/Nexus-trade/pkg/utils"
	"github.com/nickmuds954-code/Nexus-trade/pkg/validate"
	"go.uber.org/zap"
)

const (
	seedDemoUSD     = 10000
	subscriptionFee = 1.00
	minWithdrawal   = 5.00
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidInput      = errors.New("invalid input")
)

// userState is the single aggregate behind every balance and ledger read.
// It exists once per process and is reset only by restart.
type userState struct {
	activeAccount  domain.AccountType
	usdDemo        float64
	usdReal        float64
	gcoinDemo      float64
	gcoinReal      float64
	mobileNumber   string
	miningLatch    bool
	developerFunds float64
	transactions   []domain.Transaction
	profile        domain.Profile
}

// Service owns the aggregate. Every read-modify-write holds the mutex for
// its full duration, so each operation is all-or-nothing.
type Service struct {
	mu    sync.Mutex
	state userState
}

func New() *Service {
	return &Service{
		state: userState{
			activeAccount: domain.AccountDemo,
			usdDemo:       seedDemoUSD,
		},
	}
}

// Record adds amount to the (account, currency) balance and prepends one
// COMPLETED transaction. It performs no sign or floor validation; callers
// pass negative amounts for debits.
func (s *Service) Record(txType domain.TransactionType, amount float64, currency domain.Currency, account domain.AccountType) domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record(txType, amount, currency, account)
}

func (s *Service) record(txType domain.TransactionType, amount float64, currency domain.Currency, account domain.AccountType) domain.Transaction {
	s.apply(amount, currency, account)
	tx := domain.Transaction{
		ID:          utils.NewID(9),
		Type:        txType,
		Amount:      amount,
		Currency:    currency,
		AccountType: account,
		Date:        time.Now(),
		Status:      domain.StatusCompleted,
	}
	s.prepend(tx)
	return tx
}

func (s *Service) apply(amount float64, currency domain.Currency, account domain.AccountType) {
	isUSD := currency == domain.CurrencyUSD
	isReal := account == domain.AccountReal
	switch {
	case isUSD && isReal:
		s.state.usdReal += amount
	case isUSD && !isReal:
		s.state.usdDemo += amount
	case !isUSD && isReal:
		s.state.gcoinReal += amount
	default:
		s.state.gcoinDemo += amount
	}
}

func (s *Service) prepend(tx domain.Transaction) {
	s.state.transactions = append([]domain.Transaction{tx}, s.state.transactions...)
}

// ExchangeGCoin converts gAmount G-Coin into usdGain USD for the active
// account under a single lock hold. Two GCOIN_SALE entries are prepended:
// the USD leg lands ahead of the G-Coin leg in the newest-first ledger.
// The gAmount <= active G-Coin precondition is the caller's to enforce.
func (s *Service) ExchangeGCoin(gAmount, usdGain float64) (usdLeg, gcoinLeg domain.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := s.state.activeAccount
	s.apply(-gAmount, domain.CurrencyGCoin, account)
	s.apply(usdGain, domain.CurrencyUSD, account)

	now := time.Now()
	gcoinLeg = domain.Transaction{
		ID:          utils.NewID(9),
		Type:        domain.TxGCoinSale,
		Amount:      -gAmount,
		Currency:    domain.CurrencyGCoin,
		AccountType: account,
		Date:        now,
		Status:      domain.StatusCompleted,
	}
	usdLeg = domain.Transaction{
		ID:          utils.NewID(9),
		Type:        domain.TxGCoinSale,
		Amount:      usdGain,
		Currency:    domain.CurrencyUSD,
		AccountType: account,
		Date:        now,
		Status:      domain.StatusCompleted,
	}
	s.prepend(gcoinLeg)
	s.prepend(usdLeg)

	zap.L().Info("gcoin exchange executed",
		zap.Float64("gcoin", gAmount),
		zap.Float64("usd", usdGain),
		zap.String("account", string(account)))
	return usdLeg, gcoinLeg
}

// SubscribeMining debits the one-time fee from the REAL USD balance no
// matter which account is active. Repeat calls while already subscribed
// debit the fee again; that matches the observed product behavior and is
// deliberately not guarded here.
func (s *Service) SubscribeMining(mobile string) (bool, error) {
	if !validate.IsMobile(mobile) {
		return false, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.usdReal < subscriptionFee {
		return false, nil
	}
	s.state.miningLatch = true
	s.state.mobileNumber = mobile
	s.state.developerFunds += subscriptionFee
	s.record(domain.TxSubscription, -subscriptionFee, domain.CurrencyUSD, domain.AccountReal)

	zap.L().Info("mining subscription charged", zap.String("mobile", mobile))
	return true, nil
}

// Deposit credits the active account's USD balance. REAL deposits require
// a payout destination matching the country's gateway: a mobile money
// number for mobile money regions, a Luhn-valid card identifier for the
// bank and card gateway.
func (s *Service) Deposit(amount float64, destination string, country domain.Country) (domain.Transaction, error) {
	if amount <= 0 {
		return domain.Transaction{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.activeAccount == domain.AccountReal {
		if !validPayoutDestination(destination, country) {
			return domain.Transaction{}, ErrInvalidInput
		}
		s.state.mobileNumber = destination
	}
	return s.record(domain.TxDeposit, amount, domain.CurrencyUSD, s.state.activeAccount), nil
}

// Card-shaped input must pass Luhn even on the mobile money gateway;
// anything else on that gateway needs enough digits for a phone number.
func validPayoutDestination(destination string, country domain.Country) bool {
	if !country.IsMobileMoneyRegion() || validate.IsCardShaped(destination) {
		return validate.IsLuhn(destination)
	}
	return validate.IsMobile(destination)
}

// Withdraw debits the active account's USD balance.
func (s *Service) Withdraw(amount float64, destination string) (domain.Transaction, error) {
	if amount < minWithdrawal || !validate.IsMobile(destination) {
		return domain.Transaction{}, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if amount > s.activeBalance(domain.CurrencyUSD) {
		return domain.Transaction{}, ErrInsufficientFunds
	}
	return s.record(domain.TxWithdraw, -amount, domain.CurrencyUSD, s.state.activeAccount), nil
}

func (s *Service) SetActiveAccount(account domain.AccountType) error {
	if account != domain.AccountDemo && account != domain.AccountReal {
		return ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.activeAccount = account
	return nil
}

func (s *Service) ActiveAccount() domain.AccountType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.activeAccount
}

// ActiveBalance is the derived read of the pair selected by currency and
// the current active account.
func (s *Service) ActiveBalance(currency domain.Currency) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeBalance(currency)
}

func (s *Service) activeBalance(currency domain.Currency) float64 {
	isReal := s.state.activeAccount == domain.AccountReal
	if currency == domain.CurrencyUSD {
		if isReal {
			return s.state.usdReal
		}
		return s.state.usdDemo
	}
	if isReal {
		return s.state.gcoinReal
	}
	return s.state.gcoinDemo
}

func (s *Service) Balances() domain.BalanceSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.BalanceSnapshot{
		Active:           s.state.activeAccount,
		USDDemo:          s.state.usdDemo,
		USDReal:          s.state.usdReal,
		GCoinDemo:        s.state.gcoinDemo,
		GCoinReal:        s.state.gcoinReal,
		ActiveUSD:        s.activeBalance(domain.CurrencyUSD),
		ActiveGCoin:      s.activeBalance(domain.CurrencyGCoin),
		MiningSubscribed: s.state.miningLatch,
	}
}

func (s *Service) IsMiningSubscribed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.miningLatch
}

func (s *Service) DeveloperFunds() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.developerFunds
}

// WithdrawDeveloperFunds sweeps the accumulated subscription revenue and
// returns the swept amount.
func (s *Service) WithdrawDeveloperFunds() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	swept := s.state.developerFunds
	s.state.developerFunds = 0
	return swept
}

// Query filters the ledger by account, optionally by type and by an
// inclusive day range. The returned slice is a fresh copy in original
// newest-first order.
func (s *Service) Query(account domain.AccountType, typeFilter domain.TransactionType, from, to *time.Time) []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Transaction, 0, len(s.state.transactions))
	for _, tx := range s.state.transactions {
		if tx.AccountType != account {
			continue
		}
		if typeFilter != "" && tx.Type != typeFilter {
			continue
		}
		if !inDayRange(tx.Date, from, to) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func inDayRange(ts time.Time, from, to *time.Time) bool {
	day := truncateDay(ts)
	if from != nil && day.Before(truncateDay(*from)) {
		return false
	}
	if to != nil && day.After(truncateDay(*to)) {
		return false
	}
	return true
}

func truncateDay(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}

func (s *Service) Profile() domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.profile
}

// UpdateProfile stores the identity fields and rederives verification:
// a name longer than three characters and an address containing '@'.
func (s *Service) UpdateProfile(name, email, mobile string) domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.profile = domain.Profile{
		Name:         name,
		Email:        email,
		MobileNumber: mobile,
		Verified:     len(name) > 3 && strings.Contains(email, "@"),
	}
	if mobile != "" {
		s.state.mobileNumber = mobile
	}
	return s.state.profile
}

func (s *Service) MobileNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.mobileNumber
}
