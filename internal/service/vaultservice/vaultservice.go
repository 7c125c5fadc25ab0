package vaultservice

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Ledger interface {
	DeveloperFunds() float64
	WithdrawDeveloperFunds() float64
}

var (
	ErrVaultLocked = errors.New("vault passcode rejected")
	ErrVaultEmpty  = errors.New("no funds available in vault")
)

// The vault gate is a single hardcoded passcode; there are no users or
// sessions anywhere in the system.
const (
	vaultPasscode   = "2473651738"
	developerNumber = "0706371846"
)

// Service guards the developer revenue accumulated from mining
// subscription fees.
type Service struct {
	ledger       Ledger
	passcodeHash []byte
}

func New(ledger Ledger) *Service {
	hash, err := bcrypt.GenerateFromPassword([]byte(vaultPasscode), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("failed to hash vault passcode", zap.Error(err))
	}
	return &Service{ledger: ledger, passcodeHash: hash}
}

func (s *Service) Unlock(passcode string) error {
	if bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(passcode)) != nil {
		return ErrVaultLocked
	}
	return nil
}

func (s *Service) Funds(passcode string) (float64, error) {
	if err := s.Unlock(passcode); err != nil {
		return 0, err
	}
	return s.ledger.DeveloperFunds(), nil
}

// Withdraw sweeps the entire vault to the developer payout number. The
// sweep is a single ledger call; a zero sweep reports the vault empty.
func (s *Service) Withdraw(passcode string) (amount float64, destination string, err error) {
	if err := s.Unlock(passcode); err != nil {
		return 0, "", err
	}
	swept := s.ledger.WithdrawDeveloperFunds()
	if swept <= 0 {
		return 0, "", ErrVaultEmpty
	}

	zap.L().Info("developer vault swept", zap.Float64("amount", swept))
	return swept, developerNumber, nil
}
